package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/config"
)

// FileName is the log file created under the configured logs directory
const FileName = "minigold.log"

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// New builds the root logger from settings
// With a logs directory the terminal stays free for the renderer and output goes to a file,
// otherwise to stderr; Graylog is added when enabled and reachable
// The returned closer releases the log file
func New(s *config.Settings) (zerolog.Logger, io.Closer, error) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var (
		out    io.Writer
		closer io.Closer = nopCloser
	)

	if s.LogsDir != "" {
		if err := os.MkdirAll(s.LogsDir, 0755); err != nil {
			return zerolog.Nop(), nopCloser, fmt.Errorf("error creating logs dir: %w", err)
		}
		file, err := os.OpenFile(filepath.Join(s.LogsDir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), nopCloser, fmt.Errorf("error opening log file: %w", err)
		}
		out = zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
		closer = file
	} else {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	var gelfErr error
	if s.Graylog.Enabled {
		gw, err := gelf.NewWriter(s.Graylog.Address)
		if err != nil {
			gelfErr = err
		} else {
			out = zerolog.MultiLevelWriter(out, gw)
		}
	}

	logger := NewWithWriter(out, s.Level())
	if gelfErr != nil {
		logger.Warn().Err(gelfErr).Str("address", s.Graylog.Address).Msg("Graylog unavailable, continuing without it")
	}
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")

	return logger, closer, nil
}

// NewWithWriter returns a timestamped logger at level writing to w
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "minigold").Logger()
}
