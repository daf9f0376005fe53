package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/listenupapp/luckysign/internal/service"
)

func pngCmd(opts *globalOptions) *cobra.Command {
	var flags signFlags
	var render service.RenderOptions
	var out string

	c := &cobra.Command{
		Use:   "png",
		Short: "Render a sign to a PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			signs, cleanup, err := opts.signService()
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := signs.Render(cmd.Context(), req, render)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, res.PNG, 0o644); err != nil { //nolint:gosec // output image is meant to be shared
				return fmt.Errorf("write %s: %w", out, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Wrote:    %s (%dx%d, %d bytes)\n", out, res.Width, res.Height, len(res.PNG))
			fmt.Fprintf(w, "BlurHash: %s\n", res.BlurHash)
			return nil
		},
	}

	flags.register(c)
	c.Flags().IntVar(&render.CellSize, "cell-size", 0, "Cell edge in pixels (default from config)")
	c.Flags().IntVar(&render.Gap, "gap", 0, "White line width between cells in pixels")
	c.Flags().BoolVar(&render.Digits, "digits", false, "Draw each cell's digit")
	c.Flags().StringVarP(&out, "out", "o", "sign.png", "Output file")

	return c
}
