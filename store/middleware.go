package store

import (
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingMiddleware logs every action passing through the store. When the
// logger accepts Debug output the full action value is dumped, which is the
// main tool for chasing "why did this state change" questions.
func LoggingMiddleware(logger *zap.Logger) Middleware {
	return func(next Dispatcher) Dispatcher {
		return func(a Action) {
			if a != nil && logger.Core().Enabled(zapcore.DebugLevel) {
				logger.Debug("store: action",
					zap.String("action", a.Name()),
					zap.String("payload", spew.Sdump(a)),
				)
			}

			next(a)
		}
	}
}
