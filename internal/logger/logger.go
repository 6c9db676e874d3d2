package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. MENU_ENV=dev switches to the development
// config; anything else gets the production encoder with the environment
// stamped on every entry.
func New() *zap.SugaredLogger {
	var (
		log *zap.Logger
		err error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("MENU_ENV")) == "dev" {
		log, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "MENU_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("MENU_ENV"),
		}))
		log, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return log.Sugar()
}

type contextKey struct{}

// ContextKey keys the request-scoped logger inside a context.
var ContextKey = contextKey{}

// FromContext returns the request-scoped logger, or a fresh one when the
// context carries none.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if log, ok := ctx.Value(ContextKey).(*zap.SugaredLogger); ok {
		return log
	}
	log := New()
	log.Warn("no logger found in ctx - creating new one")
	return log
}

func init() {
	zap.ReplaceGlobals(New().Desugar())
}
