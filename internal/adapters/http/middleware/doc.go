// Package middleware contains the inbound HTTP request pipeline. Each
// middleware wraps an http.Handler, and the router applies them in order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Recovery sits outermost so that a panic anywhere below it still produces a
// well-formed error response. The ID middlewares run before logging and
// tracing so both can tag their output with the request and correlation IDs.
package middleware
