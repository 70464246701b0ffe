// Package openapi describes the registration endpoint as an OpenAPI 3
// document built with kin-openapi. The schema mirrors the limits enforced by
// the validation package so clients can check payloads before posting.
package openapi
