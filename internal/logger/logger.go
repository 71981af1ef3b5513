// Package logger provides a small JSON structured logger and an Echo
// HTTP logging middleware, mirroring the shape used across this
// codebase's services.
package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

type Logger struct {
	*log.Logger
	level  LogLevel
	output io.Writer
}

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) LogLevel {
	switch s {
	case "debug":
		return DEBUG
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Method    string                 `json:"method,omitempty"`
	URI       string                 `json:"uri,omitempty"`
	Status    int                    `json:"status,omitempty"`
	Latency   string                 `json:"latency,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

func New() *Logger {
	return &Logger{
		Logger: log.New(os.Stdout, "", 0),
		level:  INFO,
		output: os.Stdout,
	}
}

func NewWithLevel(level LogLevel) *Logger {
	return &Logger{
		Logger: log.New(os.Stdout, "", 0),
		level:  level,
		output: os.Stdout,
	}
}

func (l *Logger) SetOutput(output io.Writer) {
	l.output = output
}

func (l *Logger) Debug(message string, fields ...interface{}) {
	if l.level <= DEBUG {
		l.log(DEBUG, message, fields...)
	}
}

func (l *Logger) Info(message string, fields ...interface{}) {
	if l.level <= INFO {
		l.log(INFO, message, fields...)
	}
}

func (l *Logger) Warn(message string, fields ...interface{}) {
	if l.level <= WARN {
		l.log(WARN, message, fields...)
	}
}

func (l *Logger) Error(message string, fields ...interface{}) {
	if l.level <= ERROR {
		l.log(ERROR, message, fields...)
	}
}

func (l *Logger) log(level LogLevel, message string, fields ...interface{}) {
	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   message,
		Fields:    make(map[string]interface{}),
	}

	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			entry.Fields[key] = fields[i+1]
		}
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		l.Logger.Printf("failed to marshal log entry: %v", err)
		return
	}

	l.output.Write(jsonData)
	l.output.Write([]byte("\n"))
}

// HTTPLogger is an Echo middleware that emits one JSON log line per
// request.
func (l *Logger) HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			latency := time.Since(start)
			req := c.Request()
			res := c.Response()

			entry := LogEntry{
				Timestamp: start.UTC().Format(time.RFC3339),
				Level:     "INFO",
				Message:   "http request",
				RequestID: res.Header().Get(echo.HeaderXRequestID),
				Method:    req.Method,
				URI:       req.RequestURI,
				Status:    res.Status,
				Latency:   latency.String(),
			}

			if err != nil {
				entry.Error = err.Error()
				entry.Level = "ERROR"
			}

			jsonData, _ := json.Marshal(entry)
			l.output.Write(jsonData)
			l.output.Write([]byte("\n"))

			return err
		}
	}
}
