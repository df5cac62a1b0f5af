package utils

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	LoggerKey    = "logger"
	RequestIDKey = "request_id"
)

// Logger is the logging contract used by handlers and main
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

type slogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// ContextLogger stores a request scoped logger carrying the request id
func ContextLogger(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LoggerKey, logger.With(RequestIDKey, c.GetString(RequestIDKey)))
		c.Next()
	}
}

// GetLogger returns the request scoped logger, falling back to the given one
func GetLogger(c *gin.Context, fallback Logger) Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(Logger); ok {
			return l
		}
	}
	return fallback
}

// LoggerMiddleware logs the service URL and outcome of every request
func LoggerMiddleware(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}

		GetLogger(c, logger).Info("Request handled",
			"method", c.Request.Method,
			"url", scheme+"://"+c.Request.Host+c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP())
	}
}
