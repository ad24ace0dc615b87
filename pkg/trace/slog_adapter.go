package trace

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes bus events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("op", event.Op.String()),
		slog.Int("addr", int(event.Addr)),
		slog.String("tx", hex.EncodeToString(event.Tx)),
		slog.Duration("duration", event.Duration),
	}
	if event.Op == OpWriteRead {
		attrs = append(attrs, slog.String("rx", hex.EncodeToString(event.Rx)))
	}
	level := slog.LevelDebug
	if event.Failed() {
		attrs = append(attrs, slog.String("error", event.Err))
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "bus", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
