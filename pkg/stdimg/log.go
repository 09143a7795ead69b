package stdimg

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger installs the logger used by ApplyCommand. Passing nil silences it.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger = newDiscardLogger()
		return
	}
	logger = l
}
