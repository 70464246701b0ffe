// Package uischema loads the display texts of the registration form (title,
// labels, placeholders and button captions) from a JSON or YAML document and
// applies them to built form models. Keeping the texts out of the builder
// lets deployments relabel the form without touching code.
package uischema
