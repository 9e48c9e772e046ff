package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemLoggers      = make(map[string]*Logger)
	subsystemLoggersMutex sync.Mutex
)

type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger. It is safe for concurrent use.
type Logger struct {
	level Level // atomic
	tag   string
	b     *Backend
}

// RegisterSubSystem returns the logger of the given subsystem, creating it
// on BackendLog on first use.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	logger, exists := subsystemLoggers[subsystem]
	if !exists {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// SupportedSubsystems returns a sorted slice of the registered subsystem tags.
func SupportedSubsystems() []string {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsystem := range subsystemLoggers {
		subsystems = append(subsystems, subsystem)
	}
	sort.Strings(subsystems)
	return subsystems
}

// SetLogLevels sets the log level of every registered subsystem.
func SetLogLevels(level Level) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

// ParseAndSetLogLevels parses a level name and applies it to every
// registered subsystem.
func ParseAndSetLogLevels(levelName string) error {
	level, ok := LevelFromString(levelName)
	if !ok {
		return errors.Errorf("The specified debug level [%s] is invalid", levelName)
	}
	SetLogLevels(level)
	return nil
}

// InitLog attaches the log files and an optional stderr stream to
// BackendLog and starts it. stderrLevel of LevelOff leaves stderr quiet.
func InitLog(logFile, errLogFile string, stderrLevel Level) error {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		return errors.Wrapf(err, "Error adding log file %s as log rotator for level %s", logFile, LevelTrace)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		return errors.Wrapf(err, "Error adding log file %s as log rotator for level %s", errLogFile, LevelWarn)
	}
	if stderrLevel != LevelOff {
		err = BackendLog.AddStream(os.Stderr, stderrLevel)
		if err != nil {
			return errors.Wrapf(err, "Error adding stderr to the logger for level %s", stderrLevel)
		}
	}
	return BackendLog.Run()
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.level)))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32((*uint32)(&l.level), uint32(level))
}

// Backend returns the log backend.
func (l *Logger) Backend() *Backend {
	return l.b
}

// Tracef formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelTrace.
func (l *Logger) Tracef(format string, params ...interface{}) {
	l.Writef(LevelTrace, format, params...)
}

// Debugf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelDebug.
func (l *Logger) Debugf(format string, params ...interface{}) {
	l.Writef(LevelDebug, format, params...)
}

// Infof formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelInfo.
func (l *Logger) Infof(format string, params ...interface{}) {
	l.Writef(LevelInfo, format, params...)
}

// Warnf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelWarn.
func (l *Logger) Warnf(format string, params ...interface{}) {
	l.Writef(LevelWarn, format, params...)
}

// Errorf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelError.
func (l *Logger) Errorf(format string, params ...interface{}) {
	l.Writef(LevelError, format, params...)
}

// Criticalf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelCritical.
func (l *Logger) Criticalf(format string, params ...interface{}) {
	l.Writef(LevelCritical, format, params...)
}

// Writef formats the message and writes it with the given level if the
// logger's level allows it.
func (l *Logger) Writef(logLevel Level, format string, params ...interface{}) {
	if l.Level() > logLevel {
		return
	}
	l.b.write(logEntry{
		log:   l.formatEntry(time.Now(), logLevel, fmt.Sprintf(format, params...)),
		level: logLevel,
	})
}

// formatEntry renders a single line:
// 2006-01-02 15:04:05.000 [LVL] TAG: file.go:123 message
func (l *Logger) formatEntry(t time.Time, logLevel Level, message string) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 128))
	buf.WriteString(t.Format("2006-01-02 15:04:05.000"))
	buf.WriteString(" [")
	buf.WriteString(logLevel.String())
	buf.WriteString("] ")
	buf.WriteString(l.tag)
	buf.WriteString(": ")
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		buf.WriteString(callSite(l.b.flag))
		buf.WriteString(" ")
	}
	buf.WriteString(strings.TrimRight(message, "\n"))
	buf.WriteByte('\n')
	return buf.Bytes()
}

// callSite skips the logger's own frames: callSite, formatEntry, Writef and
// the level method.
func callSite(flag uint32) string {
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		return "???:0"
	}
	if flag&LogFlagShortFile != 0 {
		file = filepath.Base(file)
	}
	return fmt.Sprintf("%s:%d", file, line)
}
