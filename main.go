package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/mbalug7/go-icm42605/pkg/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	busKind    string
	busDevice  string
	ad0        bool
	tracePath  string

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "go-icm42605",
		Short: "Inspect and configure an ICM-42605 IMU",
		Long: "go-icm42605 reads and writes the registers of an ICM-42605 over a Linux i2c-dev bus " +
			"or a USB-I2C serial adapter, and decodes recorded bus traces.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.StringVar(&busKind, "bus", "", "bus kind, i2c or serial")
	flags.StringVar(&busDevice, "device", "", "bus device, e.g. /dev/i2c-1 or /dev/ttyUSB0")
	flags.BoolVar(&ad0, "ad0", false, "AD0 pin is tied high (device address 0x69)")
	flags.StringVar(&tracePath, "trace", "", "append every bus transfer to this trace file")

	rootCmd.AddCommand(whoamiCmd, readCmd, writeCmd, dumpCmd, watchCmd, traceCmd)
}

// loadConfig reads the configuration file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("bus") {
		cfg.Bus.Kind = busKind
	}
	if flags.Changed("device") {
		cfg.Bus.Device = busDevice
	}
	if flags.Changed("ad0") {
		cfg.AD0 = ad0
	}
	if flags.Changed("trace") {
		cfg.Trace = tracePath
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
