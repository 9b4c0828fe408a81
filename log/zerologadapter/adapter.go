// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"context"

	"github.com/jackc/pgmodel"
	"github.com/rs/zerolog"
)

type Logger struct {
	logger      zerolog.Logger
	withFunc    func(context.Context, zerolog.Context) zerolog.Context
	fromContext bool
	skipModule  bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithContextFunc adds possibility to get request scoped values from the
// ctx.Context before logging lines.
func WithContextFunc(withFunc func(context.Context, zerolog.Context) zerolog.Context) Option {
	return func(logger *Logger) {
		logger.withFunc = withFunc
	}
}

// WithoutModule disables adding module:pgmodel to the default logger context.
func WithoutModule() Option {
	return func(logger *Logger) {
		logger.skipModule = true
	}
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom pgmodel
// logging facade as output.
func NewLogger(logger zerolog.Logger, options ...Option) *Logger {
	l := Logger{logger: logger}
	l.init(options)
	return &l
}

// NewContextLogger creates a logger that extracts the zerolog.Logger from the
// context.Context by using `zerolog.Ctx`. The zerolog.DefaultContextLogger will
// be used if no logger is associated with the context.
func NewContextLogger(options ...Option) *Logger {
	l := Logger{fromContext: true}
	l.init(options)
	return &l
}

func (pl *Logger) init(options []Option) {
	for _, opt := range options {
		opt(pl)
	}
	if !pl.skipModule {
		pl.logger = pl.logger.With().Str("module", "pgmodel").Logger()
	}
}

func (pl *Logger) Log(ctx context.Context, level pgmodel.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case pgmodel.LogLevelNone:
		zlevel = zerolog.NoLevel
	case pgmodel.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case pgmodel.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case pgmodel.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	var zctx zerolog.Context
	if pl.fromContext {
		zctx = zerolog.Ctx(ctx).With()
		if !pl.skipModule {
			zctx = zctx.Str("module", "pgmodel")
		}
	} else {
		zctx = pl.logger.With()
	}
	if pl.withFunc != nil {
		zctx = pl.withFunc(ctx, zctx)
	}

	logger := zctx.Logger()
	logger.WithLevel(zlevel).Fields(data).Msg(msg)
}
