package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-variants/internal/pkg/displayfit"
)

func fitEntrypoint() *cobra.Command {
	return &cobra.Command{
		Use:   "fit [natural WxH] [desired WxH]",
		Short: "Print the display size and centering margins of an image in a box",
		Long:  "A desired side of 0 leaves that side unconstrained, e.g. 400x0.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(args[0], args[1], cmd.OutOrStdout())
		},
	}
}

func runFit(natural, desired string, out io.Writer) error {
	n, err := valueobject.ParseDimension(natural)
	if err != nil {
		return err
	}
	d, err := valueobject.ParseDimension(desired)
	if err != nil {
		return err
	}

	box := displayfit.Fit(n.Width, n.Height, d.Width, d.Height)

	fmt.Fprintf(out, "width:  %d\nheight: %d\n", box.Width, box.Height)
	if style := box.Style(); style != "" {
		fmt.Fprintf(out, "style:  %s\n", style)
	}
	return nil
}
