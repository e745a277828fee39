// Package weblog captures structured log records for the editor frontend.
// It exposes one named zap logger per channel (system, world, nodenet) and
// keeps a bounded in-memory store of the emitted records so the editor can
// poll for log lines newer than a client-side watermark.
package weblog

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Channel names match the log sections the editor frontend displays.
const (
	ChannelSystem  = "system"
	ChannelWorld   = "world"
	ChannelNodenet = "nodenet"
)

// maxRecords bounds each channel's store; the oldest records are dropped
// once the bound is reached.
const maxRecords = 1000

var channelNames = []string{ChannelSystem, ChannelWorld, ChannelNodenet}

// Channels returns the fixed set of channel names.
func Channels() []string {
	return append([]string(nil), channelNames...)
}

// Record is a captured log line as served to the editor frontend. Times are
// unix milliseconds.
type Record struct {
	Logger string `json:"logger"`
	Time   int64  `json:"time"`
	Level  string `json:"level"`
	Msg    string `json:"msg"`
}

// Option customises the service configuration.
type Option func(*Service)

// WithConsole tees every captured record to the provided core as well, so
// records reach both the in-memory store and standard process output.
func WithConsole(core zapcore.Core) Option {
	return func(s *Service) {
		s.console = core
	}
}

// WithClock overrides the time source used to stamp records and compute the
// server time. Tests use this for deterministic timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Service owns the per-channel loggers and their bounded record stores. All
// methods are safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	channels map[string]*channelState
	console  zapcore.Core
	clock    func() time.Time
}

type channelState struct {
	level   zap.AtomicLevel
	logger  *zap.Logger
	records []Record
}

// New constructs the service with one logger per channel. The levels map
// assigns initial thresholds by channel name; channels it omits default to
// warn. Naming a channel outside the fixed set, or a level zap cannot parse,
// is an error.
func New(levels map[string]string, options ...Option) (*Service, error) {
	for name := range levels {
		if !validChannel(name) {
			return nil, fmt.Errorf("weblog: unknown channel %q", name)
		}
	}

	s := &Service{
		channels: make(map[string]*channelState, len(channelNames)),
		clock:    time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	for _, name := range channelNames {
		level := zapcore.WarnLevel
		if requested, ok := levels[name]; ok && requested != "" {
			parsed, err := parseLevel(requested)
			if err != nil {
				return nil, err
			}
			level = parsed
		}

		state := &channelState{level: zap.NewAtomicLevelAt(level)}
		capture := &captureCore{service: s, channel: name, level: state.level}

		var core zapcore.Core = capture
		if s.console != nil {
			core = zapcore.NewTee(capture, s.console)
		}
		state.logger = zap.New(core).Named(name)

		s.channels[name] = state
	}

	return s, nil
}

// Logger returns the named zap logger for a channel. Unknown channels get a
// no-op logger so call sites stay unconditional.
func (s *Service) Logger(channel string) *zap.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.channels[channel]; ok {
		return state.logger
	}
	return zap.NewNop()
}

// SetLevel updates a channel's threshold at runtime. Records below the new
// level stop being captured; already stored records stay.
func (s *Service) SetLevel(channel, level string) error {
	parsed, err := parseLevel(level)
	if err != nil {
		return err
	}

	s.mu.RLock()
	state, ok := s.channels[channel]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("weblog: unknown channel %q", channel)
	}

	state.level.SetLevel(parsed)
	return nil
}

// ClearLogs drops all stored records across every channel.
func (s *Service) ClearLogs() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, state := range s.channels {
		state.records = nil
	}
}

// Logs returns the current server time plus the records with Time >= after
// from the requested channels, merged and sorted ascending by time. An empty
// channel list means every channel; unknown names are skipped.
func (s *Service) Logs(channels []string, after int64) (int64, []Record) {
	if len(channels) == 0 {
		channels = channelNames
	}

	s.mu.RLock()
	var records []Record
	for _, name := range channels {
		state, ok := s.channels[name]
		if !ok {
			continue
		}
		for _, record := range state.records {
			if record.Time >= after {
				records = append(records, record)
			}
		}
	}
	s.mu.RUnlock()

	sortRecords(records)

	return s.clock().UnixMilli(), records
}

// append stores a captured record, dropping the oldest entries once the
// channel exceeds its bound.
func (s *Service) append(channel string, record Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.channels[channel]
	if !ok {
		return
	}

	state.records = append(state.records, record)
	if overflow := len(state.records) - maxRecords; overflow > 0 {
		state.records = append(state.records[:0], state.records[overflow:]...)
	}
}

func validChannel(name string) bool {
	for _, channel := range channelNames {
		if channel == name {
			return true
		}
	}
	return false
}
