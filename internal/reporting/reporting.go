// Package reporting forwards unexpected errors to Sentry. Capture is
// fire-and-forget: it never blocks the request or changes the response.
package reporting

import (
	"time"

	"github.com/getsentry/sentry-go"
)

func Init(dsn string) error {
	// An empty DSN disables the transport, so local development works
	// without a Sentry project.
	return sentry.Init(sentry.ClientOptions{
		Dsn: dsn,
	})
}

func Capture(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}

func Flush() {
	sentry.Flush(2 * time.Second)
}
