package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zoobzio/emitter"
	"github.com/zoobzio/emitter/examples/door"
)

// config holds the settings resolved from flags and DOOR_* environment variables.
type config struct {
	Locked   bool
	LogLevel string
	JSON     bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "door",
		Short:         "Drive an event-emitting door",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	root.PersistentFlags().Bool("locked", false, "veto every attempt to open the door")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("json", false, "write JSON logs instead of console output")

	v.SetEnvPrefix("DOOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newOpenCmd(v), newKnockCmd(v))
	return root
}

func newOpenCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Try to open the door",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, logger, err := setup(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opened, err := d.Open()
			if err != nil {
				return err
			}
			if !opened {
				logger.Warn().Msg("door stayed shut")
				return errors.New("door is locked")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "open")
			return d.Close()
		},
	}
}

func newKnockCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "knock <who>",
		Short: "Knock on the door",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := setup(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			e, err := d.Knock(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.(*door.KnockEvent).Who)
			return nil
		},
	}
}

// loadConfig reads the resolved settings out of v.
func loadConfig(v *viper.Viper) config {
	return config{
		Locked:   v.GetBool("locked"),
		LogLevel: v.GetString("log-level"),
		JSON:     v.GetBool("json"),
	}
}

func newLogger(cfg config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	if !cfg.JSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// setup builds a door wired with logging listeners per cfg.
func setup(v *viper.Viper, logOut io.Writer) (*door.Door, zerolog.Logger, error) {
	cfg := loadConfig(v)
	logger := newLogger(cfg, logOut)

	d, err := door.New(emitter.WithLogger(logger))
	if err != nil {
		return nil, logger, err
	}

	if cfg.Locked {
		d.On(door.BeforeOpen, func(e emitter.Event) error {
			logger.Info().Str("event", e.Name()).Msg("door is locked")
			e.StopDefault()
			return nil
		})
	}
	d.On(door.Open, func(e emitter.Event) error {
		logger.Info().Str("event", e.Name()).Msg("door opened")
		return nil
	})
	d.OnArgs(door.Close, func(args ...any) error {
		logger.Info().Int("args", len(args)).Msg("door closed")
		return nil
	})
	d.On(door.Knock, func(e emitter.Event) error {
		if k, ok := e.(*door.KnockEvent); ok {
			logger.Info().Str("who", k.Who).Msg("knock knock")
		}
		return nil
	})

	return d, logger, nil
}
