// Package export renders tabular datasets into downloadable formats. The
// portal uses it for marks report downloads.
package export

// Dataset defines tabular export content. Rows are keyed by header name so a
// missing cell renders empty rather than shifting columns.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}
