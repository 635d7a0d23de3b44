package logging

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu       sync.RWMutex
	channels = map[ChannelLabel]*zerolog.Logger{}
	fallback = zerolog.New(nil).Level(zerolog.Disabled)
)

// Configure (re)builds the global channel set from cfg, initializing each
// channel's zerolog.Logger and its writers (including any lumberjack
// rotating file writer). Each call replaces the whole channel set.
func Configure(cfg Channels) error {
	if len(cfg) == 0 {
		return fmt.Errorf("no logging channels configured")
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	built := make(map[ChannelLabel]*zerolog.Logger, len(cfg))
	for _, ch := range cfg {
		if ch == nil {
			continue
		}
		if err := ch.initialize(); err != nil {
			return fmt.Errorf("initialize channel %q: %w", ch.Name, err)
		}
		built[ch.Name] = &ch.logger
	}

	mu.Lock()
	channels = built
	mu.Unlock()
	return nil
}

// Logger returns the zerolog.Logger for name, or a disabled logger if name
// was never configured.
func Logger(name ChannelLabel) *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if lg, ok := channels[name]; ok {
		return lg
	}
	return &fallback
}
