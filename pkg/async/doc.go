// Package async provides a bounded executor for blocking operations.
//
// Serving static content turns every request into one or more blocking
// stat/open/read calls. Issuing those through a capacity-bounded Pool keeps
// slow storage from stalling unrelated requests: at most Size operations run
// at once, and callers waiting for a slot give up as soon as their request
// context is canceled.
//
//	pool := async.NewPool(64)
//
//	meta, err := async.Call(ctx, pool, func(ctx context.Context) (loader.Metadata, error) {
//		return source.Stat(ctx, name)
//	})
//
// Pool.Go returns a Future for callers that want to overlap other work with
// the blocking operation.
package async
