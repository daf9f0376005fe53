package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/listenupapp/luckysign/internal/domain"
	"github.com/listenupapp/luckysign/internal/grid"
	"github.com/listenupapp/luckysign/internal/render"
	"github.com/listenupapp/luckysign/internal/service"
)

// signFlags are the inputs shared by draw and png.
type signFlags struct {
	date       string
	name       string
	size       string
	main       string
	background string
}

func (f *signFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "Birth date as dd.mm.yyyy. or yyyy-mm-dd (required)")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Name; only Latin and Latvian letters count")
	cmd.Flags().StringVarP(&f.size, "size", "s", "", "Grid size: 0|1|2 or 1x1|2x2|4x4 (default from config)")
	cmd.Flags().StringVar(&f.main, "main", "", "Custom main colour #rrggbb (switches to custom colour mode)")
	cmd.Flags().StringVar(&f.background, "background", "", "Custom background colour #rrggbb")
	_ = cmd.MarkFlagRequired("date")
	cmd.MarkFlagsRequiredTogether("main", "background")
}

func (f *signFlags) request() (service.DrawRequest, error) {
	req := service.DrawRequest{
		BirthDate: f.date,
		Name:      f.name,
	}
	if f.size != "" {
		size, err := grid.ParseSize(f.size)
		if err != nil {
			return req, err
		}
		code := int(size)
		req.Size = &code
	}
	if f.main != "" || f.background != "" {
		req.ColorMode = domain.ColorModeCustom
		req.MainColor = f.main
		req.BackgroundColor = f.background
	}
	return req, nil
}

func drawCmd(opts *globalOptions) *cobra.Command {
	var flags signFlags
	var digits bool
	var format string

	c := &cobra.Command{
		Use:   "draw",
		Short: "Draw a sign in the terminal",
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

			sign, err := signs.Draw(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printSign(cmd.OutOrStdout(), sign, digits, format)
		},
	}

	flags.register(c)
	c.Flags().BoolVar(&digits, "digits", false, "Print each cell's digit")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	return c
}

func printSign(w io.Writer, sign *domain.Sign, digits bool, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sign)
	case "pretty", "":
		return printPrettySign(w, sign, digits)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettySign(w io.Writer, sign *domain.Sign, digits bool) error {
	title := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	fmt.Fprintln(w, title.Render("Lucky sign "+sign.BirthDate.String()))
	if sign.Name != "" {
		fmt.Fprintf(w, "Name:       %s\n", sign.Name)
	}
	fmt.Fprintf(w, "Size:       %s (%dx%d)\n", sign.SizeLabel, sign.Side, sign.Side)
	fmt.Fprintf(w, "Method:     %s\n", sign.Method)
	fmt.Fprintf(w, "Main:       %s %s\n", swatch(sign.Colors.Main), sign.Colors.Main)
	fmt.Fprintf(w, "Background: %s %s\n", swatch(sign.Colors.Background), sign.Colors.Background)
	fmt.Fprintf(w, "Digits:     %s\n", joinInts(sign.Digits))
	fmt.Fprintln(w)

	table, err := renderGrid(sign, digits)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	fmt.Fprintln(w, faint.Render(fmt.Sprintf("%d of %d cells carry a sign digit", sign.SignedCells(), sign.Side*sign.Side)))
	return nil
}

// renderGrid paints every cell as a coloured block, two columns wide so
// cells look square in most terminals.
func renderGrid(sign *domain.Sign, digits bool) (string, error) {
	styles := make(map[string]lipgloss.Style, 2)
	style := func(hex string) (lipgloss.Style, error) {
		if s, ok := styles[hex]; ok {
			return s, nil
		}
		fg, err := render.ContrastHex(hex)
		if err != nil {
			return lipgloss.Style{}, err
		}
		s := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(fg))
		styles[hex] = s
		return s, nil
	}

	var b strings.Builder
	for i, row := range sign.Cells {
		for j, hex := range row {
			s, err := style(hex)
			if err != nil {
				return "", err
			}
			text := "  "
			if digits {
				text = " " + strconv.Itoa(sign.Grid[i][j])
			}
			b.WriteString(s.Render(text))
		}
		if i < len(sign.Cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
