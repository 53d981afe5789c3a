package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"carousel/internal/carousel"
)

func showCommand() *cobra.Command {
	asJSON := false
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the carousel state",
		Long: "Prints the stored state with everything derived from it. With --json the\n" +
			"interactivity context a page embeds for the slider is printed instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			state := cfg.Carousel.State()
			if asJSON {
				return writeContext(cmd.OutOrStdout(), state)
			}
			return writeSummary(cmd.OutOrStdout(), state)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the interactivity context as JSON")
	return cmd
}

func writeContext(w io.Writer, s carousel.State) error {
	ctx, err := carousel.NewContext(s)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ctx)
}

func writeSummary(w io.Writer, s carousel.State) error {
	offset, err := carousel.DisplayOffsetPercent(s)
	if err != nil {
		return err
	}
	transform, err := carousel.Transform(s)
	if err != nil {
		return err
	}
	vars, err := carousel.StyleVars(s)
	if err != nil {
		return err
	}
	page, err := carousel.Page(s)
	if err != nil {
		return err
	}
	pages, err := carousel.Pages(s)
	if err != nil {
		return err
	}
	visible, err := carousel.Visible(s)
	if err != nil {
		return err
	}

	labels := make([]string, len(visible))
	for i, idx := range visible {
		labels[i] = strconv.Itoa(idx + 1)
	}

	_, err = fmt.Fprintf(w,
		"items total:    %d\n"+
			"items per view: %d\n"+
			"current index:  %d\n"+
			"offset:         %s%%\n"+
			"transform:      %s\n"+
			"style:          %s\n"+
			"page:           %d/%d\n"+
			"visible:        %s\n",
		s.ItemsTotal, s.ItemsPerView, s.CurrentIndex,
		strconv.FormatFloat(offset, 'f', -1, 64),
		transform, vars, page+1, pages, strings.Join(labels, " "))
	return err
}
