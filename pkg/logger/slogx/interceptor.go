package slogx

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
)

// InterceptorLogger adapts l to the go-grpc-middleware logging interface.
func InterceptorLogger(l *Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func LoggingInterceptor(l *Logger) grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(
		InterceptorLogger(l),
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	)
}
