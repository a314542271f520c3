package logs

import (
	"fmt"

	joonix "github.com/joonix/log"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Supported values for the log format flag.
const (
	FormatText    = "text"
	FormatFluentd = "fluentd"
	FormatJSON    = "json"
)

// NewFormatter returns the logrus formatter for the named format. Colors are
// disabled for text output when logs are also written to a file.
func NewFormatter(format string, disableColors bool) (logrus.Formatter, error) {
	switch format {
	case FormatText:
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = disableColors
		return formatter, nil
	case FormatFluentd:
		return joonix.NewFormatter(), nil
	case FormatJSON:
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format %s", format)
	}
}

// ConfigureFormatter sets the formatter of the standard logger.
func ConfigureFormatter(format string, disableColors bool) error {
	formatter, err := NewFormatter(format, disableColors)
	if err != nil {
		return err
	}
	logrus.SetFormatter(formatter)
	return nil
}
