package proto

type Proto uint8

const (
	Unknown Proto = iota
	HTTP09
	HTTP10
	HTTP11
	HTTP2
)

// tokens is the fixed protocol table of the request line. Only these exact
// spellings are recognized; HTTP/2 appears in its request-line form "HTTP/2.0".
var tokens = map[string]Proto{
	"HTTP/0.9": HTTP09,
	"HTTP/1.0": HTTP10,
	"HTTP/1.1": HTTP11,
	"HTTP/2.0": HTTP2,
}

// Parse resolves a protocol token against the fixed table, yielding Unknown
// for everything else ("HTTP/2.2", "http/1.1", garbage).
func Parse(str string) Proto {
	return tokens[str]
}

func (p Proto) String() string {
	switch p {
	case HTTP09:
		return "HTTP/0.9"
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2.0"
	default:
		return "UNKNOWN"
	}
}
