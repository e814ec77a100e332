package sentryutil

import (
	"time"

	"github.com/getsentry/sentry-go"
)

type Options struct {
	DSN         string
	Environment string
	Release     string
}

// Init configures the global Sentry hub. An empty DSN leaves reporting
// disabled and CaptureError becomes a no-op.
func Init(opts Options) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:         opts.DSN,
		Environment: opts.Environment,
		Release:     opts.Release,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// chat users are not ours to ship to a third party
			event.User = sentry.User{}
			return event
		},
	})
}

func Enabled() bool {
	client := sentry.CurrentHub().Client()
	return client != nil && client.Options().Dsn != ""
}

func Flush() { sentry.Flush(2 * time.Second) }

func CaptureError(err error, tags map[string]string) {
	if err == nil || !Enabled() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
