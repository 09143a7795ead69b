package cli

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// InitLogger builds the process logger and hands it to the engine. Debug
// output is human-readable text; everything else is JSON on stderr.
func InitLogger(cfg Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(cfg.LogLevel)
	if cfg.Debug() {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	stdimg.SetLogger(l)
	return l
}
