// Package handler defines the core abstractions for HTTP request processing:
// type-safe handlers with custom context types, composable middleware, and a
// clean separation between response generation and rendering.
//
// A handler receives a context and returns a Response, which is a function
// that performs the actual write:
//
//	func hello(ctx handler.Context) handler.Response {
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := w.Write([]byte("hello"))
//			return err
//		}
//	}
//
// Custom context types implement the Context interface to carry
// application-specific request state; NewContext provides a default
// implementation backed by the request's own context.
package handler
