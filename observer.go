// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ik5/audsys/spi"
)

// observer reports every dispatch attempt to the logger and the metrics.
func (s *System) observer() spi.Observer {
	return spi.ObserverFunc(func(a spi.Attempt) {
		s.metrics.attempt(a)

		attrs := []any{
			slog.String("op", a.Op),
			slog.String("provider", a.Provider),
			slog.String("domain", string(a.Domain)),
			slog.String("outcome", a.Kind.String()),
		}
		switch a.Kind {
		case spi.Failure:
			s.logger.Warn("provider failed", append(attrs, slog.Any("error", a.Err))...)
		case spi.Unsupported:
			s.logger.Debug("provider declined", append(attrs, slog.String("reason", a.Reason))...)
		default:
			s.logger.Debug("provider accepted", attrs...)
		}
	})
}

// finish records the end of a facade operation.
func (s *System) finish(op string, err error) {
	status := "ok"
	level := slog.LevelDebug
	switch {
	case err == nil:
	case errors.Is(err, ErrUnsupported):
		status = "unsupported"
	case errors.Is(err, ErrNilArgument):
		status = "invalid"
	default:
		status = "error"
		level = slog.LevelWarn
	}

	s.metrics.operation(op, status)
	if err != nil {
		s.logger.Log(context.Background(), level, "operation finished",
			slog.String("op", op), slog.String("status", status), slog.Any("error", err))
	}
}
