// Package middleware provides cross-cutting HTTP middleware for the serving
// pipeline: request ID propagation and structured request logging.
//
//	h := handler.Chain(
//		static.Serve[handler.Context](cfg),
//		middleware.RequestID[handler.Context](),
//		middleware.Logging[handler.Context](),
//	)
package middleware
