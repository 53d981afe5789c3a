// Package command contains the carouselctl command constructors.
package command

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/spf13/cobra"

	"carousel/internal/carousel"
	"carousel/internal/config"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	configFilePath := config.DefaultPath()
	verbose := false

	cmd := &cobra.Command{
		Use:          "carouselctl [command] [flags]",
		Short:        "Drive a carousel state file without the viewer",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log.SetFlags(0)
			log.SetPrefix("carouselctl: ")
			if verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}

			svc := config.NewConfigServiceAt(configFilePath)
			log.Printf("using state file %s", svc.Path())
			cmd.SetContext(context.WithValue(cmd.Context(), serviceKey{}, svc))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config", "c",
		configFilePath,
		"path to the state file",
	)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		moveCommand("forward", "Move the window forward one page (the index decreases, wrapping)", carousel.Forward),
		moveCommand("back", "Move the window back one page (the index increases, wrapping)", carousel.Back),
		resetCommand(),
		offsetCommand(),
		showCommand(),
		initCommand(),
	)

	return cmd
}

type serviceKey struct{}

var errNoService = errors.New("state file service not initialised")

func service(ctx context.Context) (config.ConfigService, error) {
	if ctx == nil {
		return nil, errNoService
	}
	svc, ok := ctx.Value(serviceKey{}).(config.ConfigService)
	if !ok {
		return nil, errNoService
	}
	return svc, nil
}

func loadConfig(ctx context.Context) (config.ConfigService, *config.Config, error) {
	svc, err := service(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
