// Package logging builds the process logger and the request logging middleware.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const permission = 0o664

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

// Options selects level, format and destination.
type Options struct {
	Level  string
	Format string // "console" or "json"
	Path   string
}

// Logger wraps the built logger together with the file it writes to, if any.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// Close releases the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// New builds a logger writing to w, or to opts.Path when set.
func New(opts Options, w io.Writer) (*Logger, error) {
	out := &Logger{}
	if w == nil {
		w = os.Stdout
	}
	if opts.Path != "" {
		f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		out.file = f
		w = zerolog.SyncWriter(f)
	} else if strings.EqualFold(opts.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return out, nil
}

// Middleware logs one line per request and tags it with a request id.
func Middleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		reqLogger := logger.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		event := reqLogger.Info()
		switch {
		case status >= 500:
			event = reqLogger.Error()
		case status >= 400:
			event = reqLogger.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// FromContext returns the request logger stored by Middleware, or fallback.
func FromContext(c *gin.Context, fallback zerolog.Logger) *zerolog.Logger {
	if c == nil || c.Request == nil {
		return &fallback
	}
	if l := zerolog.Ctx(c.Request.Context()); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &fallback
}
