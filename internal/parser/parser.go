// Package parser turns a drained request buffer into an http.Request.
//
// The grammar is line-oriented and deliberately small: a request line, colon
// separated header fields up to a blank line, then an optional single-line
// ampersand-delimited body. Parsing walks the lines through three states and
// never looks at a byte twice.
package parser

import (
	"strings"

	"github.com/indigo-web/utils/uf"
	"github.com/weft-web/weft/http"
	"github.com/weft-web/weft/http/method"
	"github.com/weft-web/weft/http/proto"
	"github.com/weft-web/weft/http/status"
	"github.com/weft-web/weft/internal/qstring"
	"github.com/weft-web/weft/kv"
)

type section uint8

const (
	eRequestLine section = iota + 1
	eHeaderFields
	eMessageBody
)

// Parse decodes raw as an ASCII text message and runs the section state
// machine over its lines. It either returns a complete request or no request
// at all: any failure of the request line discards the whole message, and a
// returned request is guaranteed to carry a recognized method and protocol.
func Parse(raw []byte) (*http.Request, error) {
	if !isASCII(raw) {
		return nil, status.ErrNonASCII
	}

	var (
		data    = uf.B2S(raw)
		request = http.NewRequest()
		state   = eRequestLine
	)

	for len(data) > 0 {
		line := data
		if lf := strings.IndexByte(data, '\n'); lf >= 0 {
			line, data = data[:lf], data[lf+1:]
		} else {
			data = ""
		}
		line = strings.TrimSuffix(line, "\r")

		switch state {
		case eRequestLine:
			if err := parseRequestLine(line, request); err != nil {
				return nil, err
			}

			state = eHeaderFields
		case eHeaderFields:
			if len(strings.TrimSpace(line)) == 0 {
				state = eMessageBody
				continue
			}

			// a line without a colon contributes no field but doesn't
			// discard the message
			if key, value, ok := parseHeaderField(line); ok {
				request.Headers.Set(key, value)
			}
		case eMessageBody:
			if len(line) == 0 {
				return request, nil
			}

			if request.Method.Body() != method.BodyNo {
				if pairs := kv.New(); parsePairs(line, pairs) {
					request.Body = pairs
				}
			}
		}
	}

	if state == eRequestLine {
		// not a single line was present
		return nil, status.ErrBadRequestLine
	}

	return request, nil
}

// parseRequestLine tokenizes the first line on single spaces. Three tokens
// form METHOD SP URI SP PROTOCOL, both looked up against their fixed tables.
// A single token is the pre-1.0 legacy form: the token is the URI, implying
// GET and HTTP/0.9. Any other token count fails the parse.
func parseRequestLine(line string, request *http.Request) error {
	tokens := strings.Split(strings.TrimSpace(line), " ")

	switch len(tokens) {
	case 3:
		m := method.Parse(tokens[0])
		if m == method.Unknown {
			return status.ErrUnknownMethod
		}

		p := proto.Parse(tokens[2])
		if p == proto.Unknown {
			return status.ErrUnknownProtocol
		}

		request.Method, request.Proto = m, p
		setURI(tokens[1], request)
	case 1:
		request.Method, request.Proto = method.GET, proto.HTTP09
		setURI(tokens[0], request)
	default:
		return status.ErrBadRequestLine
	}

	return nil
}

// setURI stores the verbatim request target and its decomposition around the
// first '?': the base path and the query string, the latter parsed into the
// query arguments mapping.
func setURI(uri string, request *http.Request) {
	request.URI = uri
	request.Path = uri

	if question := strings.IndexByte(uri, '?'); question >= 0 {
		request.Path = uri[:question]
		request.QueryString = uri[question+1:]
		qstring.Parse(request.QueryString, request.Query)
	}
}

// parseHeaderField splits a line on the first colon and trims both sides.
// Lines without a colon yield no field.
func parseHeaderField(line string) (key, value string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return "", "", false
	}

	return strings.TrimSpace(line[:colon]), strings.TrimSpace(line[colon+1:]), true
}

// parsePairs fills dst from a body line and reports whether it contributed
// anything. Each contributing body line replaces the previous body mapping
// wholesale, so the last one wins.
func parsePairs(line string, dst *kv.Storage) bool {
	qstring.Parse(line, dst)
	return dst.Len() > 0
}

func isASCII(raw []byte) bool {
	for _, c := range raw {
		if c > 0x7f {
			return false
		}
	}

	return true
}
