package commands

import (
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

const subsystem = "ethunit"

func newLogger() *zap.SugaredLogger {
	return logging.Logger(subsystem).SugaredLogger.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// setupLogging configures stderr logging at level, falling back to error
// when the level is not recognized.
func setupLogging(level string) {
	lvl, err := logging.Parse(level)
	if err != nil {
		lvl = logging.LevelError
	}

	logging.SetupLogging(logging.Config{
		Level:  lvl,
		Stderr: true,
	})
}
