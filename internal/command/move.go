package command

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"carousel/internal/carousel"
	"carousel/internal/config"
)

func moveCommand(name, short string, dir carousel.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Long: short + ".\n" +
			"The new state is written back to the state file and the new index is printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return update(cmd, func(s carousel.State) (carousel.State, error) {
				return carousel.Move(s, dir)
			})
		},
	}
}

func resetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Return the window to the first item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return update(cmd, carousel.Reset)
		},
	}
}

func offsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "offset",
		Short: "Print the display offset in percent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			offset, err := carousel.DisplayOffsetPercent(cfg.Carousel.State())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(offset, 'f', -1, 64))
			return err
		},
	}
}

// update applies fn to the stored state, saves the result and prints the new index
func update(cmd *cobra.Command, fn func(carousel.State) (carousel.State, error)) error {
	svc, cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}

	prev := cfg.Carousel.State()
	next, err := fn(prev)
	if err != nil {
		return err
	}

	if err := save(svc, cfg, next); err != nil {
		return err
	}
	log.Printf("%s: index %d -> %d", cmd.Name(), prev.CurrentIndex, next.CurrentIndex)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), next.CurrentIndex)
	return err
}

func save(svc config.ConfigService, cfg *config.Config, s carousel.State) error {
	cfg.Carousel.SetState(s)
	if err := svc.Save(cfg); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
