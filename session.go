package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mbalug7/go-icm42605/pkg/common"
	"github.com/mbalug7/go-icm42605/pkg/config"
	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/mbalug7/go-icm42605/pkg/icm42605"
	"github.com/mbalug7/go-icm42605/pkg/trace"
)

// session is an open bus with the sensor on it.
type session struct {
	device  *icm42605.Device
	closers []io.Closer
}

func openBus(c config.Bus) (hal.Bus, io.Closer, error) {
	switch c.Kind {
	case config.BusSerial:
		b, err := common.NewSerialBridge(c.Device, c.Baud, c.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	default:
		b, err := common.NewI2CDev(c.Device)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	}
}

func openSession(c config.Config) (*session, error) {
	bus, closer, err := openBus(c.Bus)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s bus %s: %w", c.Bus.Kind, c.Bus.Device, err)
	}
	s := &session{closers: []io.Closer{closer}}

	loggers := []trace.Logger{trace.NewSlogAdapter(slog.Default())}
	if c.Trace != "" {
		fl, err := trace.NewFileLogger(c.Trace)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to open trace file: %w", err)
		}
		loggers = append(loggers, fl)
		s.closers = append(s.closers, fl)
	}
	rec := trace.NewRecorder(bus, trace.NewMultiLogger(loggers...))
	slog.Debug("bus opened", "kind", c.Bus.Kind, "device", c.Bus.Device, "session", rec.SessionID())

	s.device = icm42605.NewDevice(rec, c.AD0)
	return s, nil
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			slog.Warn("close failed", "error", err)
		}
	}
}
