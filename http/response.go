package http

import (
	"strconv"

	"github.com/weft-web/weft/http/status"
)

var crlf = []byte("\r\n")

// DefaultContentType is the only content type the core emits. Responders
// producing anything else override the field explicitly.
const DefaultContentType = "text/html"

// Response is the minimal fixed response set the system writes back: a status
// line, a Content-Type header, a terminating blank line and the verbatim body.
type Response struct {
	Code        status.Code
	ContentType string
	Body        []byte
}

func NewResponse(code status.Code, body []byte) Response {
	return Response{
		Code:        code,
		ContentType: DefaultContentType,
		Body:        body,
	}
}

// Render serializes the response into wire bytes. The status line protocol is
// always HTTP/1.1, whatever the request named: pre-1.0 compatibility requests
// still receive a modern status line, matching the fixed response grammar.
func (r Response) Render() []byte {
	// status line + Content-Type + CRLF + body, nothing else
	buff := make([]byte, 0, len("HTTP/1.1 500 INTERNAL SERVER ERROR\r\nContent-Type: \r\n\r\n")+len(r.ContentType)+len(r.Body))
	buff = append(buff, "HTTP/1.1 "...)
	buff = strconv.AppendUint(buff, uint64(r.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, status.Text(r.Code)...)
	buff = append(buff, crlf...)
	buff = append(buff, "Content-Type: "...)
	buff = append(buff, r.ContentType...)
	buff = append(buff, crlf...)
	buff = append(buff, crlf...)
	buff = append(buff, r.Body...)

	return buff
}
