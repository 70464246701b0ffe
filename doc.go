// Package signupform composes the registration form: the validation schema,
// the form controller, the orchestrator and its renderers. An App holds the
// state of one form instance and is not safe for concurrent use; the HTTP
// surface builds one per request.
package signupform
