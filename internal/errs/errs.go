// Package errs defines the API error shape.
//
// Every failure that reaches a client is rendered as an HTTPError:
// a machine code, a human message, the status, and optional
// field-level errors for rejected request payloads.
package errs
