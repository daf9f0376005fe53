package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/listenupapp/luckysign/internal/color"
	"github.com/listenupapp/luckysign/internal/domain"
)

func colorsCmd(opts *globalOptions) *cobra.Command {
	var date, name, format string

	c := &cobra.Command{
		Use:   "colors",
		Short: "Show the colours derived for a birth date and name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			signs, cleanup, err := opts.signService()
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := signs.Colors(cmd.Context(), date, name)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report, format)
		},
	}

	c.Flags().StringVarP(&date, "date", "d", "", "Birth date as dd.mm.yyyy. or yyyy-mm-dd (required)")
	c.Flags().StringVarP(&name, "name", "n", "", "Name; only Latin and Latvian letters count")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	_ = c.MarkFlagRequired("date")

	return c
}

func printReport(w io.Writer, r *domain.ColorReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "pretty", "":
		fmt.Fprintf(w, "Birth date: %s\n", r.BirthDate)
		if r.Letters != "" {
			fmt.Fprintf(w, "Letters:    %s\n", r.Letters)
		}
		fmt.Fprintf(w, "Method:     %s\n", r.Method)
		if r.Method == color.MethodNumerology {
			fmt.Fprintf(w, "Date digit: %d\n", r.DateDigit)
			fmt.Fprintf(w, "Name digit: %d\n", r.NameDigit)
		}
		fmt.Fprintf(w, "Main:       %s %s\n", swatch(r.Colors.Main), r.Colors.Main)
		fmt.Fprintf(w, "Background: %s %s\n", swatch(r.Colors.Background), r.Colors.Background)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func paletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the numerology palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			digit := lipgloss.NewStyle().Bold(true)
			for _, e := range color.Palette() {
				fmt.Fprintf(w, "%s %s %s\n", digit.Render(fmt.Sprint(e.Digit)), swatch(e.Hex), e.Hex)
			}
			return nil
		},
	}
}
