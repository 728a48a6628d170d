// Package response frames complete HTTP responses.
package response

import "strconv"

// CRLF terminates the status line, each header line, and the header block.
const CRLF = "\r\n"

const (
	// StatusLine is the only status line this server ever sends.
	StatusLine = "HTTP/1.1 200 OK"

	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

// Frame builds the full response message for body and contentType: status
// line, Content-Type header, a Content-Length header equal to the exact byte
// length of body, a blank line, then the body verbatim. Pure function, no
// failure mode.
func Frame(body, contentType string) []byte {
	msg := StatusLine + CRLF +
		HeaderContentType + ": " + contentType + CRLF +
		HeaderContentLength + ": " + strconv.Itoa(len(body)) + CRLF +
		CRLF +
		body
	return []byte(msg)
}
