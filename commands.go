package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mbalug7/go-icm42605/pkg/common"
	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/mbalug7/go-icm42605/pkg/icm42605"
	"github.com/mbalug7/go-icm42605/pkg/regs"
	"github.com/mbalug7/go-icm42605/pkg/trace"
	"github.com/spf13/cobra"
)

var (
	dumpBank int

	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Read WHO_AM_I and check the device identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := s.device.WhoAmI()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "WHO_AM_I 0x%02x\n", id)
			if id != icm42605.WHO_AM_I_VALUE {
				return fmt.Errorf("device at 0x%02x: %w", s.device.Interface().Address(), icm42605.ErrUnexpectedDevice)
			}
			return nil
		},
	}

	readCmd = &cobra.Command{
		Use:   "read REG",
		Short: "Read one register and decode its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupRegister(args[0])
			if err != nil {
				return err
			}
			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			v, err := s.device.Handle(r).Read()
			if err != nil {
				return err
			}
			printValue(cmd, v)
			return nil
		},
	}

	writeCmd = &cobra.Command{
		Use:   "write REG field=value...",
		Short: "Change fields of a register",
		Long: "Change fields of a register. Readable registers are read first so that fields not " +
			"named keep their value; write-only registers start from zero. Enumeration values are " +
			"given by variant name.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupRegister(args[0])
			if err != nil {
				return err
			}
			assignments, err := parseAssignments(r, args[1:])
			if err != nil {
				return err
			}
			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return writeFields(cmd, s.device, r, assignments)
		},
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Read every readable register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bank *uint8
			if dumpBank >= 0 {
				b := uint8(dumpBank)
				bank = &b
			}
			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			values, err := s.device.Dump(bank)
			for _, v := range values {
				printValue(cmd, v)
			}
			return err
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Enable the sensors and print a sample on every data ready interrupt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()
			return watch(cmd, s.device)
		},
	}

	traceCmd = &cobra.Command{
		Use:   "trace FILE",
		Short: "List a recorded bus trace with register names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := trace.NewReader(args[0])
			if err != nil {
				return err
			}
			defer rd.Close()

			events, err := rd.All()
			for _, a := range trace.AnnotateAll(icm42605.Registers, icm42605.REG_BANK_SEL, events) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Event.Timestamp.Format("15:04:05.000000"), a)
			}
			return err
		},
	}
)

func init() {
	dumpCmd.Flags().IntVar(&dumpBank, "bank", -1, "only dump this bank")
}

func lookupRegister(name string) (*regs.Register, error) {
	r, ok := icm42605.Registers.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown register %q", name)
	}
	return r, nil
}

type assignment struct {
	field *regs.Field
	value regs.FieldValue
}

func parseAssignments(r *regs.Register, args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		name, text, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		f, ok := r.Field(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("%s has no field %q", r.Name, name)
		}
		fv, err := regs.ParseFieldValue(f, text)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{field: f, value: fv})
	}
	return out, nil
}

func writeFields(cmd *cobra.Command, dev *icm42605.Device, r *regs.Register, assignments []assignment) error {
	if !r.Readable() {
		v := regs.NewValue(r)
		for _, a := range assignments {
			if err := v.Set(a.field, a.value); err != nil {
				return err
			}
		}
		if err := dev.Handle(r).Write(v); err != nil {
			return err
		}
		printValue(cmd, v)
		return nil
	}

	cb := icm42605.NewConfigBuilder(dev)
	for _, a := range assignments {
		cb.Field(r, a.field.Name, a.value)
	}
	err := cb.Write()
	if errors.Is(err, icm42605.ErrConfigUnchanged) {
		slog.Info("register already holds these values", "register", r.Name)
		err = nil
	}
	if err != nil {
		return err
	}
	for _, v := range cb.Staged() {
		printValue(cmd, v)
	}
	return nil
}

func printValue(cmd *cobra.Command, v regs.Value) {
	r := v.Register()
	fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s %s % x  %s\n", r.Name, r.Address, r.Access, v.Bytes(), v)
}

func watch(cmd *cobra.Command, dev *icm42605.Device) error {
	line, err := common.NewInterruptLine(cfg.Interrupt.Chip, cfg.Interrupt.Line, cfg.Interrupt.Timeout)
	if err != nil {
		return err
	}
	defer line.Close()

	if err = dev.Verify(); err != nil {
		return err
	}
	err = icm42605.NewConfigBuilder(dev).
		Int1(false, true, true).
		DataReadyInt1(true).
		GyroMode(icm42605.GYRO_LOW_NOISE).
		AccelMode(icm42605.ACCEL_LOW_NOISE).
		Write()
	if err != nil && !errors.Is(err, icm42605.ErrConfigUnchanged) {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return sampleLoop(ctx, cmd, dev, line)
}

// sampleLoop prints one sample per interrupt until ctx ends.
func sampleLoop(ctx context.Context, cmd *cobra.Command, dev *icm42605.Device, line hal.InterruptLine) error {
	for {
		err := line.Wait(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if errors.Is(err, common.ErrInterruptTimeout) {
			slog.Warn("no data ready interrupt", "timeout", cfg.Interrupt.Timeout)
			continue
		}
		if err != nil {
			return err
		}
		data, err := dev.ReadRaw()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "temp %6.2f C  accel %6d %6d %6d  gyro %6d %6d %6d\n",
			data.Celsius(),
			data.Accel[0], data.Accel[1], data.Accel[2],
			data.Gyro[0], data.Gyro[1], data.Gyro[2])
	}
}
