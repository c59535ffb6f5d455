package systems

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger used by the systems. nil is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
