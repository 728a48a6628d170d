// Package request extracts the requested path from raw request bytes.
//
// This is a best-effort line scan, not an HTTP parser: only the two literal
// markers delimiting the path field of the request line are located, and the
// substring between them is taken verbatim. Headers, bodies and any lines
// past the first are never inspected.
package request

import "strings"

const (
	// startMarker is the method token with its separating space.
	startMarker = "GET "
	// endMarker is the protocol-version token with its leading space.
	endMarker = " HTTP/"
)

// ExtractPath scans raw for the request-line markers and returns the path
// between them. ok is false when either marker is missing or the end marker
// sits inside the start marker; callers map that to the default route.
//
// No validation of the path is performed: any string between the markers,
// including the empty string, is returned as-is.
func ExtractPath(raw string) (path string, ok bool) {
	start := strings.Index(raw, startMarker)
	if start == -1 {
		return "", false
	}
	pathStart := start + len(startMarker)

	end := strings.Index(raw, endMarker)
	if end < pathStart {
		return "", false
	}
	return raw[pathStart:end], true
}
