package static

import (
	"context"
	"mime"
	"path"
	"strconv"
	"strings"

	"github.com/dmitrymomot/staticserve/core/loader"
)

// gzipSuffix names the pre-compressed sibling convention: a resource
// "app.js" may have a sibling "app.js.gz" stored alongside it.
const gzipSuffix = ".gz"

// Variant is the concrete representation chosen for a resolved resource:
// either the identity resource or its pre-compressed gzip sibling.
// MediaType is always derived from the original filename extension, never
// from the ".gz" suffix.
type Variant struct {
	Name      string
	Encoding  string // "" for identity, "gzip" for the sibling
	MediaType string
	Meta      loader.Metadata
}

// negotiate picks the variant to serve for the resolved resource name.
// meta is the identity resource's metadata, already confirmed to exist.
func (c Config) negotiate(ctx context.Context, name, acceptEncoding string, meta loader.Metadata) (Variant, error) {
	mediaType := mime.TypeByExtension(path.Ext(name))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	identity := Variant{Name: name, MediaType: mediaType, Meta: meta}

	if !c.preferGzip || !acceptsGzip(acceptEncoding) {
		return identity, nil
	}

	gzMeta, err := c.stat(ctx, name+gzipSuffix)
	if err != nil {
		return Variant{}, err
	}
	if !gzMeta.Exists || gzMeta.IsDir {
		return identity, nil
	}

	return Variant{
		Name:      name + gzipSuffix,
		Encoding:  "gzip",
		MediaType: mediaType,
		Meta:      gzMeta,
	}, nil
}

// acceptsGzip reports whether an Accept-Encoding header value admits gzip.
// A q=0 coding is an explicit refusal. A specific "gzip" or "x-gzip" entry
// always outranks a "*" wildcard, regardless of order.
func acceptsGzip(header string) bool {
	wildcard := -1.0
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		switch strings.ToLower(strings.TrimSpace(coding)) {
		case "gzip", "x-gzip":
			return qvalue(params) > 0
		case "*":
			if wildcard < 0 {
				wildcard = qvalue(params)
			}
		}
	}
	return wildcard > 0
}

// qvalue extracts the quality from the parameter part of an encoding entry,
// defaulting to 1 when absent or unparsable.
func qvalue(params string) float64 {
	for _, p := range strings.Split(params, ";") {
		key, val, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 1
		}
		return q
	}
	return 1
}
