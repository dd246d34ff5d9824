package status

type (
	Code   uint16
	Status string
)

// Commonly used HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2

	OK             Code = 200 // RFC 9110, 15.3.1
	Created        Code = 201 // RFC 9110, 15.3.2
	Accepted       Code = 202 // RFC 9110, 15.3.3
	NoContent      Code = 204 // RFC 9110, 15.3.5
	PartialContent Code = 206 // RFC 9110, 15.3.7

	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	NotModified       Code = 304 // RFC 9110, 15.4.5
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9

	BadRequest            Code = 400 // RFC 9110, 15.5.1
	Unauthorized          Code = 401 // RFC 9110, 15.5.2
	Forbidden             Code = 403 // RFC 9110, 15.5.4
	NotFound              Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed      Code = 405 // RFC 9110, 15.5.6
	RequestTimeout        Code = 408 // RFC 9110, 15.5.9
	Gone                  Code = 410 // RFC 9110, 15.5.11
	RequestEntityTooLarge Code = 413 // RFC 9110, 15.5.14
	RequestURITooLong     Code = 414 // RFC 9110, 15.5.15
	Teapot                Code = 418 // RFC 9110, 15.5.19 (Unused)

	InternalServerError     Code = 500 // RFC 9110, 15.6.1
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	BadGateway              Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable      Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout          Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

// Text returns the upper-cased reason phrase of the code, as it appears on the
// wire in status lines ("HTTP/1.1 404 NOT FOUND"). Unknown codes map to
// "UNKNOWN STATUS CODE".
func Text(code Code) Status {
	switch code {
	case Continue:
		return "CONTINUE"
	case SwitchingProtocols:
		return "SWITCHING PROTOCOLS"
	case OK:
		return "OK"
	case Created:
		return "CREATED"
	case Accepted:
		return "ACCEPTED"
	case NoContent:
		return "NO CONTENT"
	case PartialContent:
		return "PARTIAL CONTENT"
	case MovedPermanently:
		return "MOVED PERMANENTLY"
	case Found:
		return "FOUND"
	case NotModified:
		return "NOT MODIFIED"
	case TemporaryRedirect:
		return "TEMPORARY REDIRECT"
	case PermanentRedirect:
		return "PERMANENT REDIRECT"
	case BadRequest:
		return "BAD REQUEST"
	case Unauthorized:
		return "UNAUTHORIZED"
	case Forbidden:
		return "FORBIDDEN"
	case NotFound:
		return "NOT FOUND"
	case MethodNotAllowed:
		return "METHOD NOT ALLOWED"
	case RequestTimeout:
		return "REQUEST TIMEOUT"
	case Gone:
		return "GONE"
	case RequestEntityTooLarge:
		return "REQUEST ENTITY TOO LARGE"
	case RequestURITooLong:
		return "REQUEST URI TOO LONG"
	case Teapot:
		return "I'M A TEAPOT"
	case InternalServerError:
		return "INTERNAL SERVER ERROR"
	case NotImplemented:
		return "NOT IMPLEMENTED"
	case BadGateway:
		return "BAD GATEWAY"
	case ServiceUnavailable:
		return "SERVICE UNAVAILABLE"
	case GatewayTimeout:
		return "GATEWAY TIMEOUT"
	case HTTPVersionNotSupported:
		return "HTTP VERSION NOT SUPPORTED"
	default:
		return "UNKNOWN STATUS CODE"
	}
}
