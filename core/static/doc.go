// Package static serves byte resources from a configured root with
// traversal defense, pre-compressed sibling negotiation, and conditional
// GET support.
//
// A mount is described by an immutable Config: the URL prefix it answers
// under, the sub-path of the source root it serves from, whether to prefer
// gzip siblings, and the resource source. Config values are built by
// copy-on-write mutators and shared safely across concurrent requests:
//
//	src, err := loader.NewDir("./public")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := static.NewConfig(src).
//		WithPrefix("/assets").
//		WithBasePath("dist").
//		WithPreferGzip(true)
//
//	h := static.Serve[handler.Context](cfg)
//
// # Path safety
//
// The resolver decodes the request path per segment before any joining, so
// an encoded traversal token ("%2e%2e") can never reassemble into ".."
// after concatenation. Any ".." segment is rejected outright, even one
// that would lexically remain inside the root, as is any doubled slash or
// separator smuggled inside a decoded segment. A single trailing slash is
// tolerated and names the same resource. The prefix match compares
// whole segments: a mount at "/test" never answers "/testDir/...". The
// containment guarantee is purely lexical and holds regardless of symlinks
// on the underlying filesystem.
//
// # Content negotiation
//
// With gzip preference enabled and a client that accepts gzip, the pipeline
// probes for a sibling resource named "<name>.gz" and serves it with
// Content-Encoding: gzip. The Content-Type always derives from the original
// filename extension. Without a sibling, the identity resource is served
// with no encoding header.
//
// # Conditional requests
//
// An If-Modified-Since header at or after the resource's last-modified
// time (compared at whole-second granularity) yields 304 with no body.
//
// # Concurrency
//
// All stat, open, and read operations are issued through a bounded I/O pool
// (pkg/async), so slow storage cannot stall unrelated requests. Canceling
// the request context abandons queued work.
//
// The serving state machine is terminal: bad path → 400, no match or
// missing or directory → 404, fresh → 304, otherwise 200. Storage faults
// surface as 500 and are never mapped to 404.
package static
