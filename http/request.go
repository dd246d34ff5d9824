package http

import (
	"github.com/weft-web/weft/http/method"
	"github.com/weft-web/weft/http/proto"
	"github.com/weft-web/weft/kv"
)

type (
	Headers = *kv.Storage
	Query   = *kv.Storage
	Body    = *kv.Storage
)

// Request represents a fully parsed HTTP request message. It is built once per
// accepted connection and never mutated afterwards: responders and diagnostics
// may read it freely, ownership stays with the pipeline that produced it.
type Request struct {
	// Method is an enum representing the request method, never method.Unknown
	// on a parser success.
	Method method.Method
	// Proto is an enum of the protocol named in the request line, never
	// proto.Unknown on a parser success.
	Proto proto.Proto
	// URI is the verbatim request target, query string included.
	URI string
	// Path is the request target up to the first '?', or the whole URI when
	// there is none.
	Path string
	// QueryString is everything past the first '?', empty when there is none.
	QueryString string
	// Query holds the parsed query arguments. Keys are unique; on duplicates
	// the last occurrence wins.
	Query Query
	// Headers holds the parsed header fields, keys and values trimmed.
	Headers Headers
	// Body holds the parsed body arguments of the last non-empty body line,
	// empty for methods whose body valence forbids one.
	Body Body
}

func NewRequest() *Request {
	return &Request{
		Query:   kv.New(),
		Headers: kv.New(),
		Body:    kv.New(),
	}
}
