package cli

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgrid/pkg/errors"
)

// logTimeFormat renders timestamps as HH:MM:SS.cc, e.g. "14:32:01.45".
const logTimeFormat = "15:04:05.00"

// logFormatters maps --log-format values to log encodings. serve is
// usually run with json or logfmt so that log shippers can parse it.
var logFormatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetLogFormat switches the logger to the named encoding.
func (c *CLI) SetLogFormat(name string) error {
	names := make([]string, 0, len(logFormatters))
	for n := range logFormatters {
		names = append(names, n)
	}
	slices.Sort(names)
	if err := errors.ValidateFormat(name, names); err != nil {
		return err
	}
	c.Logger.SetFormatter(logFormatters[name])
	return nil
}

// timer logs how long an operation took once it finishes.
type timer struct {
	logger *log.Logger
	start  time.Time
}

func startTimer(l *log.Logger) *timer {
	return &timer{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time, rounded
// to the millisecond.
func (t *timer) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(t.start).Round(time.Millisecond))
	t.logger.Info(msg, keyvals...)
}
