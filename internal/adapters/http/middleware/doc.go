// Package middleware holds the inbound HTTP pipeline installed on the todo
// router with chi's Router.Use, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Recovery, OpenTelemetry and Logging read the outcome of a request from a
// single shared responseWriter.
package middleware
