// Package logging builds the logrus loggers used by the boxdraw command.
package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// GetLevel parses a level name. The empty string means info.
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.DebugLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns the formatter for "text", "json-pretty" or anything else as "json".
func GetFormatter(format string) logrus.Formatter {
	switch format {
	case "text":
		return &prettyFormatter{}
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}
	default:
		return &logrus.JSONFormatter{}
	}
}

// New returns a logger writing to w at the named level and format.
func New(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(GetFormatter(format))
	return l, nil
}

// prettyFormatter prints the level and message on one line and each field,
// sorted by key, on its own indented line below.
type prettyFormatter struct{}

const fieldIndent = "  "

func (p *prettyFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "[%s] %s\n", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var val string
		switch v := e.Data[k].(type) {
		case error:
			val = v.Error()
		case fmt.Stringer:
			val = v.String()
		case string:
			val = v
		default:
			js, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			val = string(js)
		}
		b.WriteString(fieldIndent)
		b.WriteString(k)
		b.WriteString(" = ")
		b.WriteString(val)
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}
