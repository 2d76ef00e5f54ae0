package dlog

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// Single line format: "<time> <LEVEL> <fn> : <message>".
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	fn, _ := e.Data[fnKey].(string)
	lv := strings.ToUpper(e.Level.String())
	if e.Level == logrus.WarnLevel {
		lv = "WARN"
	}
	line := fmt.Sprintf("%s %-5s %-30s : %s\n", e.Time.Format(timestampLayout), lv, fn, e.Message)
	return []byte(line), nil
}
