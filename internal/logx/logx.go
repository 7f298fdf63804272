package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is a no-op logger until Initialize is called, so packages can log
// unconditionally.
var Log = zerolog.Nop()

func Initialize(level string, version string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	Log = zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Str("version", version).
		Logger()
	return nil
}
