package weblog

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// captureCore is a zapcore.Core that turns log entries into Records on the
// owning service. The shape follows zap's observer core; the store and the
// record format live on the Service.
type captureCore struct {
	service *Service
	channel string
	level   zap.AtomicLevel
	fields  []zapcore.Field
}

var _ zapcore.Core = (*captureCore)(nil)

func (c *captureCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *captureCore) With(fields []zapcore.Field) zapcore.Core {
	combined := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	combined = append(combined, c.fields...)
	combined = append(combined, fields...)

	clone := *c
	clone.fields = combined
	return &clone
}

func (c *captureCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *captureCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	combined := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	combined = append(combined, c.fields...)
	combined = append(combined, fields...)

	c.service.append(c.channel, Record{
		Logger: c.channel,
		Time:   c.service.clock().UnixMilli(),
		Level:  entry.Level.String(),
		Msg:    formatMessage(entry, combined),
	})
	return nil
}

func (c *captureCore) Sync() error {
	return nil
}

// formatMessage flattens structured fields into the message so the stored
// record stays a single display string, key=value pairs sorted by key.
func formatMessage(entry zapcore.Entry, fields []zapcore.Field) string {
	if len(fields) == 0 {
		return entry.Message
	}

	enc := zapcore.NewMapObjectEncoder()
	for i := range fields {
		fields[i].AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for key := range enc.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(entry.Message)
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%v", key, enc.Fields[key])
	}
	return b.String()
}

// sortRecords orders merged records ascending by timestamp, preserving the
// per-channel insertion order for equal stamps.
func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time < records[j].Time
	})
}

// parseLevel maps a level name onto zap's scale. The original frontend used
// "warning"; zap spells it "warn", so both are accepted.
func parseLevel(level string) (zapcore.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "warning" {
		normalized = "warn"
	}

	parsed, err := zapcore.ParseLevel(normalized)
	if err != nil {
		return zapcore.InvalidLevel, fmt.Errorf("weblog: parse level %q: %w", level, err)
	}
	return parsed, nil
}
