package method

// Valence tells whether a request of some method carries a body. The parser
// skips body lines entirely for BodyNo methods and parses them otherwise.
type Valence uint8

const (
	BodyOptional Valence = iota
	BodyNo
	BodyYes
)

// Body returns the body valence of the method. The table is fixed: methods
// that semantically transfer an entity (POST, PUT, PATCH, CONNECT, TRACE)
// always have one, HEAD and DELETE never do, the rest may.
func (m Method) Body() Valence {
	switch m {
	case CONNECT, PATCH, POST, PUT, TRACE:
		return BodyYes
	case DELETE, HEAD:
		return BodyNo
	default:
		// GET, OPTIONS and Unknown
		return BodyOptional
	}
}
