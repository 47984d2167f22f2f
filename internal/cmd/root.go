package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hoppxi/shades/internal/config"
	"github.com/hoppxi/shades/pkg/backlight"
	"github.com/hoppxi/shades/pkg/operation"
)

var Version = "0.1.0"

// app holds what every subcommand needs once the root has loaded config.
type app struct {
	fs     afero.Fs
	config *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{fs: afero.NewOsFs()}

	rootCmd := &cobra.Command{
		Use:           "shades",
		Version:       Version,
		Short:         "Get and set the display backlight brightness",
		Long:          "Shades reads and writes the brightness of a sysfs backlight device, e.g. /sys/class/backlight/amdgpu_bl0/",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if writer, _ := cmd.Flags().GetString("writer"); writer != "" {
				cfg.Writer = writer
			}
			a.config = cfg

			level := cfg.LogLevel
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/shades/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().String("writer", "", "How brightness is written: sysfs or logind")

	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newSetCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))

	return rootCmd
}

// devicePath returns --path, falling back to the configured device.
func (a *app) devicePath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("path"); path != "" {
		return path, nil
	}
	if a.config.Device != "" {
		return a.config.Device, nil
	}
	return "", errors.New("no device path: pass --path or set device in the config file")
}

func (a *app) outputFormat(cmd *cobra.Command) (backlight.Format, error) {
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		return backlight.ParseFormat(output)
	}
	return a.config.Output, nil
}

func (a *app) runner(cmd *cobra.Command, format backlight.Format) (*operation.Runner, error) {
	persister, err := operation.NewPersister(a.config.Writer)
	if err != nil {
		return nil, err
	}
	return &operation.Runner{
		Fs:        a.fs,
		Out:       cmd.OutOrStdout(),
		Format:    format,
		Persister: persister,
	}, nil
}

func addPathFlag(cmd *cobra.Command) {
	cmd.Flags().String("path", "", "The sysfs path of the device, e.g. /sys/class/backlight/amdgpu_bl0/")
}

// Execute runs the command line and exits non-zero on any failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
