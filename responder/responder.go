// Package responder defines how raw request bytes turn into wire responses.
package responder

// Responder decides whether it can answer a raw request message and, if so,
// produces the complete wire response for it. Both calls receive the same
// bytes; Respond is only invoked after Matches reported true.
type Responder interface {
	Matches(raw []byte) bool
	Respond(raw []byte) ([]byte, error)
}

// Registry is an ordered list of responders. Dispatch walks the list and
// takes the first match; registration order is precedence order.
type Registry struct {
	responders []Responder
}

func NewRegistry(responders ...Responder) *Registry {
	return &Registry{responders: responders}
}

func (r *Registry) Add(responder Responder) {
	r.responders = append(r.responders, responder)
}

// Respond dispatches raw to the first matching responder. The ok result
// reports whether any responder matched at all; when none did, there is no
// response and no error.
func (r *Registry) Respond(raw []byte) (response []byte, ok bool, err error) {
	for _, responder := range r.responders {
		if responder.Matches(raw) {
			response, err = responder.Respond(raw)
			return response, true, err
		}
	}

	return nil, false, nil
}
