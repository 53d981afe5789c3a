package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"carousel/internal/carousel"
	"carousel/internal/config"
)

func initCommand() *cobra.Command {
	var (
		total   int
		perView int
		force   bool
	)
	defaults := config.DefaultConfig().Carousel

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a fresh state file",
		Long: "Writes a state file with the given counts and the index at the first item.\n" +
			"An existing file is only replaced with --force.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := service(cmd.Context())
			if err != nil {
				return err
			}

			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to replace it", svc.Path())
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			state, err := carousel.New(total, perView)
			if err != nil {
				return err
			}
			if err := save(svc, config.DefaultConfig(), state); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svc.Path())
			return err
		},
	}

	cmd.Flags().IntVar(&total, "total", defaults.ItemsTotal, "number of items")
	cmd.Flags().IntVar(&perView, "per-view", defaults.ItemsPerView, "items shown at once")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing state file")
	return cmd
}
