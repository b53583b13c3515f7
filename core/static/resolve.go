package static

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrMalformedPath rejects paths with broken percent-encoding, embedded
	// null bytes, or separators smuggled inside a decoded segment.
	ErrMalformedPath = errors.New("static: malformed request path")

	// ErrTraversal rejects paths containing a ".." segment. Rejection is
	// unconditional: a traversal that would lexically stay inside the root
	// is still refused.
	ErrTraversal = errors.New("static: path attempts to escape the serving root")

	// ErrNoMatch reports that the mount does not apply: the configured
	// prefix did not match, or the path names the mount root itself.
	ErrNoMatch = errors.New("static: no resource at this path")
)

// Resolve turns a raw URL path into a canonical resource name relative to
// the source root, or reports why the path cannot be served.
//
// Decoding happens per segment, before any joining, so an encoded ".."
// can never reassemble into a traversal token after concatenation. The
// configured prefix is stripped by whole-segment comparison; a prefix that
// is a strict textual prefix of a longer segment does not match.
func (c Config) Resolve(rawPath string) (string, error) {
	if strings.IndexByte(rawPath, 0) >= 0 {
		return "", ErrMalformedPath
	}

	segs, err := decodeSegments(rawPath)
	if err != nil {
		return "", err
	}

	rest, ok := stripPrefix(segs, c.prefix)
	if !ok {
		return "", ErrNoMatch
	}

	rel, err := canonicalize(rest)
	if err != nil {
		return "", err
	}
	if len(rel) == 0 {
		// The mount root itself: no listing behavior, simply not found.
		return "", ErrNoMatch
	}

	return strings.Join(append(append([]string{}, c.base...), rel...), "/"), nil
}

// decodeSegments splits the raw path and percent-decodes each segment
// individually. One trailing empty segment (a trailing slash) is tolerated;
// any other empty segment means a doubled slash or an absolute path was
// smuggled into the request.
func decodeSegments(rawPath string) ([]string, error) {
	raw := strings.Split(strings.TrimPrefix(rawPath, "/"), "/")

	if n := len(raw); n > 1 && raw[n-1] == "" {
		raw = raw[:n-1]
	}
	if len(raw) == 1 && raw[0] == "" {
		return nil, nil
	}

	segs := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			return nil, ErrMalformedPath
		}

		decoded, err := url.PathUnescape(s)
		if err != nil {
			return nil, ErrMalformedPath
		}
		if decoded == "" ||
			strings.IndexByte(decoded, 0) >= 0 ||
			strings.ContainsAny(decoded, `/\`) {
			return nil, ErrMalformedPath
		}

		segs = append(segs, decoded)
	}

	return segs, nil
}

// stripPrefix removes prefix from the front of segs using whole-segment
// equality. It reports false on the first mismatch.
func stripPrefix(segs, prefix []string) ([]string, bool) {
	if len(segs) < len(prefix) {
		return nil, false
	}
	for i, p := range prefix {
		if segs[i] != p {
			return nil, false
		}
	}
	return segs[len(prefix):], true
}

// canonicalize resolves "." segments lexically and rejects any "..".
func canonicalize(segs []string) ([]string, error) {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s {
		case ".":
			continue
		case "..":
			return nil, ErrTraversal
		default:
			out = append(out, s)
		}
	}
	return out, nil
}
