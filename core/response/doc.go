// Package response provides the error vocabulary shared between the serving
// pipeline and the HTTP transport. Pipeline outcomes that are not 200/304
// map onto predefined HTTPError values; the transport renders them with
// WriteError, honoring each error's own status code.
package response
