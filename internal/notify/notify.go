// Package notify is the toast collaborator: success and error messages meant
// for the person at the keyboard, not the log archive.
package notify

import "github.com/rs/zerolog"

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier routes notifications through the structured logger. Handlers
// use it where a UI would pop a toast.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) LogNotifier {
	return LogNotifier{log: log}
}

func (n LogNotifier) Success(msg string) {
	n.log.Info().Str("notice", "success").Msg(msg)
}

func (n LogNotifier) Error(msg string) {
	n.log.Warn().Str("notice", "error").Msg(msg)
}
