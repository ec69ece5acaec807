package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type LogStatus int

const (
	VERBOSE LogStatus = iota
	DEBUG
	INFO
	SUCCESS
	NEW
	REMOVE
	STOP
	WARNING
	ERROR
	FATAL
)

const DEFAULT_MIN_STAT = INFO

var statusLabels = []string{"V", "D", "I", "✓", "+", "-", "X", "!", "!!", "PANIC"}

func (e LogStatus) valid() bool { return e >= 0 && int(e) < len(statusLabels) }

func (e LogStatus) String() string {
	if !e.valid() {
		return fmt.Sprintf("UNKNOWN[%d]", int(e))
	}

	return statusLabels[e]
}

// Level returns the numeric level of this status, suitable for
// passing to SetMinLoggingLevel.
func (e LogStatus) Level() int { return int(e) }

var statusColors = []*color.Color{
	color.New(color.FgWhite, color.Italic),                //Verbose
	color.New(color.FgWhite, color.Italic),                //Debug
	color.New(color.FgWhite),                              //Info
	color.New(color.FgHiGreen),                            //Success
	color.New(color.FgGreen, color.Italic),                //New
	color.New(color.FgYellow, color.Italic),               //Remove
	color.New(color.FgHiYellow),                           //Stop
	color.New(color.FgYellow, color.Underline),            //Warning
	color.New(color.FgHiRed, color.Bold),                  //Error
	color.New(color.FgHiRed, color.Bold, color.Underline), //PANIC
}

// Color returns the colour used for this status. Unknown statuses are
// printed plain.
func (e LogStatus) Color() *color.Color {
	if !e.valid() {
		return color.New(color.Reset)
	}

	return statusColors[e]
}

// ParseLevel converts a textual level (as found in config files or
// the environment) to a LogStatus. Unknown values return an error.
func ParseLevel(level string) (LogStatus, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "verbose", "trace":
		return VERBOSE, nil
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warning", "warn":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	}

	return INFO, fmt.Errorf("unknown log level %q", level)
}

type Logger interface {
	Emit(LogStatus, string, ...interface{})
}

type loggerImpl struct {
	name string
}

func (l *loggerImpl) Emit(status LogStatus, message string, interpolations ...interface{}) {
	Log.Emit(status, l.name, message, interpolations...)
}

type LoggerManager interface {
	GetLogger(string) Logger
	Emit(LogStatus, string, string, ...interface{})
}

var Log = &loggerMgr{
	offset:   0,
	minLevel: DEFAULT_MIN_STAT,
	out:      os.Stdout,
}

type loggerMgr struct {
	sync.Mutex
	offset   int
	minLevel LogStatus
	out      io.Writer
}

func (l *loggerMgr) GetLogger(name string) Logger {
	return &loggerImpl{name: name}
}

func (l *loggerMgr) Emit(status LogStatus, name string, message string, interpolations ...interface{}) {
	l.Lock()
	defer l.Unlock()

	if status < l.minLevel {
		return
	}

	l.setNameOffset(len(name))
	padding := strings.Repeat(" ", l.offset-len(name))
	msg := fmt.Sprintf("[%s] %s(%s) %s", name, padding, status, fmt.Sprintf(message, interpolations...))

	status.Color().Fprint(l.out, msg)
}

func (l *loggerMgr) setNameOffset(offset int) {
	if offset > l.offset {
		l.offset = offset
	}
}

// SetMinLoggingLevel drops all log lines below the given level.
func SetMinLoggingLevel(level int) {
	Log.Lock()
	defer Log.Unlock()

	Log.minLevel = LogStatus(level)
}

// SetOutput redirects all loggers to the writer provided. Mostly
// useful for capturing output in tests.
func SetOutput(w io.Writer) {
	Log.Lock()
	defer Log.Unlock()

	Log.out = w
}

func Get(name string) Logger {
	return Log.GetLogger(name)
}
