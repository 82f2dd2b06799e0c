package subject

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// OutputLogger writes SDK messages to the configured callback, or to stdout/stderr.
// A nil *OutputLogger is usable and only prints warnings and errors.
type OutputLogger struct {
	options OutputLoggerOptions
}

func (o *OutputLogger) Log(msg string, err error) {
	if o.isInitialized() && o.options.LogCallback != nil {
		o.options.LogCallback(sanitize(msg), err)
	} else {
		timestamp := time.Now().Format(time.RFC3339)

		formatted := fmt.Sprintf("[%s][Subject] %s", timestamp, msg)

		if err != nil {
			formatted += err.Error()
			fmt.Fprintln(os.Stderr, sanitize(formatted))
		} else if msg != "" {
			fmt.Println(sanitize(formatted))
		}
	}
}

// Debug is dropped unless EnableDebug is set.
func (o *OutputLogger) Debug(msg string) {
	if !o.isInitialized() || !o.options.EnableDebug {
		return
	}
	o.Log(msg, nil)
}

func (o *OutputLogger) LogError(err interface{}) {
	var errMsg error
	switch e := err.(type) {
	case string:
		errMsg = errors.New(e)
	case error:
		errMsg = e
	default:
		errMsg = fmt.Errorf("%v", err)
	}
	o.Log("Error: ", errMsg)
}

func (o *OutputLogger) isInitialized() bool {
	return o != nil
}

// User attributes can end up in messages; e-mail addresses are masked.
func sanitize(string string) string {
	return emailPattern.ReplaceAllString(string, "****@****")
}
