// Package feedback carries operational notices out of the serving internals.
// Connection handling never fails the process: whatever goes wrong on a
// single stream is reported here and the stream is closed.
package feedback

import "github.com/sirupsen/logrus"

// Feedback receives notices from the server internals. Info carries routine
// events, Error carries per-connection failures. Workers call both
// concurrently, so implementations must be safe for concurrent use.
type Feedback interface {
	Info(msg string)
	Error(msg string)
}

// NewLogrus adapts a logrus logger.
func NewLogrus(log *logrus.Logger) Feedback {
	return logrusFeedback{log: log}
}

type logrusFeedback struct {
	log *logrus.Logger
}

func (l logrusFeedback) Info(msg string) {
	l.log.Info(msg)
}

func (l logrusFeedback) Error(msg string) {
	l.log.Error(msg)
}

// NewNop returns feedback discarding every notice.
func NewNop() Feedback {
	return nop{}
}

type nop struct{}

func (nop) Info(string) {}

func (nop) Error(string) {}
