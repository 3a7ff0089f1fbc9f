// logger.go
package protocol

import "github.com/sirupsen/logrus"

// Logger is package-level like the teacher's gLogger: the switch loop
// is single-threaded and there is exactly one switch per process, so
// there is no need to thread a logger handle through every call.
var Logger = logrus.New()

// SwLogger mirrors the teacher's StpLogger(tag, msg) call shape, kept
// so log call sites read the way the rest of this corpus's daemons do.
func SwLogger(level string, msg string) {
	switch level {
	case "DEBUG":
		Logger.Debug(msg)
	case "INFO":
		Logger.Info(msg)
	case "WARNING":
		Logger.Warn(msg)
	case "ERROR":
		Logger.Error(msg)
	default:
		Logger.Info(msg)
	}
}
