package logger

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CorrelationIDKey is the fiber locals key and log field holding the
// request's correlation id
const CorrelationIDKey = "correlation_id"

// CorrelationIDHeader is echoed on every response
const CorrelationIDHeader = "X-Correlation-Id"

// Init configures the global logrus logger. level is any logrus level name
// and falls back to info; format is "json" or "text".
func Init(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)

	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// FromCtx returns a log entry tagged with the request's correlation id.
func FromCtx(c *fiber.Ctx) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if c == nil {
		return entry
	}
	if id, ok := c.Locals(CorrelationIDKey).(string); ok && id != "" {
		return entry.WithField(CorrelationIDKey, id)
	}
	return entry
}
