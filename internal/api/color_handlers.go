package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/luckysign/internal/color"
	"github.com/listenupapp/luckysign/internal/domain"
)

func (s *Server) registerColorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getColors",
		Method:      http.MethodGet,
		Path:        "/api/v1/colors",
		Summary:     "Derive colours",
		Description: "Derives the main and background colours for a birth date and optional name, and reports the method used",
		Tags:        []string{"Colors"},
	}, s.handleGetColors)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPalette",
		Method:      http.MethodGet,
		Path:        "/api/v1/palette",
		Summary:     "Get palette",
		Description: "Returns the nine colours used for numerology digits",
		Tags:        []string{"Colors"},
	}, s.handleGetPalette)
}

// ColorsInput carries the colour query.
type ColorsInput struct {
	BirthDate string `query:"birth_date" doc:"Birth date as dd.MM.yyyy. or yyyy-MM-dd" example:"01.01.2000."`
	Name      string `query:"name" doc:"Optional name" example:"john"`
}

// ColorsOutput wraps the colour report for Huma.
type ColorsOutput struct {
	Body domain.ColorReport
}

func (s *Server) handleGetColors(ctx context.Context, input *ColorsInput) (*ColorsOutput, error) {
	report, err := s.services.Sign.Colors(ctx, input.BirthDate, input.Name)
	if err != nil {
		return nil, toHumaError(s.requestLogger(ctx), err)
	}
	return &ColorsOutput{Body: *report}, nil
}

// PaletteResponse lists the palette.
type PaletteResponse struct {
	Colors []color.PaletteEntry `json:"colors" doc:"Palette entries for digits 1 to 9"`
}

// PaletteOutput wraps the palette for Huma.
type PaletteOutput struct {
	Body PaletteResponse
}

func (s *Server) handleGetPalette(_ context.Context, _ *struct{}) (*PaletteOutput, error) {
	return &PaletteOutput{
		Body: PaletteResponse{Colors: s.services.Sign.Palette()},
	}, nil
}
