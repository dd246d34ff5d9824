package feedback

import "sync"

// Recorder retains every notice in arrival order. Meant for tests.
type Recorder struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func NewRecorder() *Recorder {
	return new(Recorder)
}

func (r *Recorder) Info(msg string) {
	r.mu.Lock()
	r.infos = append(r.infos, msg)
	r.mu.Unlock()
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	r.errors = append(r.errors, msg)
	r.mu.Unlock()
}

// Infos returns a copy of the info notices recorded so far.
func (r *Recorder) Infos() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.infos...)
}

// Errors returns a copy of the error notices recorded so far.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.errors...)
}
