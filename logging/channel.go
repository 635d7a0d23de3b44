package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ChannelLabel names one of the engine's logging channels, so config,
// scheduler and feature-gate evaluation diagnostics can be routed and
// leveled independently.
type ChannelLabel string

const (
	ChannelConfig    ChannelLabel = "config"
	ChannelScheduler ChannelLabel = "scheduler"
	ChannelGate      ChannelLabel = "gate"
)

// IsEmpty reports whether the ChannelLabel has not been set.
func (c ChannelLabel) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// FileOptions configures the rotating file writer for a Channel whose
// WriterTypes includes WriterFile, handed straight to lumberjack.Logger.
type FileOptions struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"maxSizeMb,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
	MaxAgeDays int    `json:"maxAgeDays,omitempty"`
	Compress   bool   `json:"compress,omitempty"`
}

func (fo *FileOptions) writer() io.Writer {
	if fo == nil {
		return nil
	}
	maxSize := fo.MaxSizeMB
	if maxSize < 1 {
		maxSize = 25
	}
	maxBackups := fo.MaxBackups
	if maxBackups < 1 {
		maxBackups = 10
	}
	maxAge := fo.MaxAgeDays
	if maxAge < 1 {
		maxAge = 14
	}
	return &lumberjack.Logger{
		Filename:   fo.Path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   fo.Compress,
	}
}

// Channel is one named, independently-leveled logging sink.
type Channel struct {
	Name        ChannelLabel `json:"name" validate:"required"`
	Level       string       `json:"level,omitempty"`
	WriterTypes WriterTypes  `json:"writerTypes,omitempty" validate:"required,min=1"`
	FileOptions *FileOptions `json:"fileOptions,omitempty"`

	logger zerolog.Logger
}

// Channels is a named set of Channel configurations.
type Channels []*Channel

func (ch *Channel) initialize() error {
	if ch.Name.IsEmpty() {
		return fmt.Errorf("channel name is empty")
	}

	level, err := zerolog.ParseLevel(ch.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(ch.WriterTypes))
	for _, wt := range ch.WriterTypes {
		switch wt {
		case WriterConsoleStdout:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
		case WriterConsoleStderr:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		case WriterFile:
			if w := ch.FileOptions.writer(); w != nil {
				writers = append(writers, w)
			}
		}
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	ch.logger = zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Str("channel", string(ch.Name)).
		Timestamp().
		Logger()
	return nil
}
