package static

import (
	"net/http"
	"time"
)

// modifiedSince reports whether a resource modified at modTime must be
// retransmitted to a client whose cache is dated by the If-Modified-Since
// header value.
//
// The wire format carries whole seconds only, so modTime is truncated
// before comparison; a resource touched within the same second as the
// client's copy counts as unmodified. An absent or unparsable header always
// requires a full response.
func modifiedSince(modTime time.Time, header string) bool {
	if header == "" {
		return true
	}

	since, err := http.ParseTime(header)
	if err != nil {
		return true
	}

	return modTime.Truncate(time.Second).After(since)
}
