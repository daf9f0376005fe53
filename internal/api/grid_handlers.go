package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/luckysign/internal/grid"
)

func (s *Server) registerGridRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getGrid",
		Method:      http.MethodGet,
		Path:        "/api/v1/grids/{size}",
		Summary:     "Get grid",
		Description: "Returns the mirrored digit table for a size code (0, 1, 2) or label (1x1, 2x2, 4x4)",
		Tags:        []string{"Grids"},
	}, s.handleGetGrid)
}

// GridInput carries the size path parameter.
type GridInput struct {
	Size string `path:"size" doc:"Size code or label" example:"1"`
}

// GridResponse is a digit table.
type GridResponse struct {
	Size  int     `json:"size" doc:"Size code"`
	Label string  `json:"label" doc:"Size label"`
	Side  int     `json:"side" doc:"Rows and columns"`
	Cells [][]int `json:"cells" doc:"Digits indexed [row][column]"`
}

// GridOutput wraps the grid for Huma.
type GridOutput struct {
	Body GridResponse
}

func (s *Server) handleGetGrid(ctx context.Context, input *GridInput) (*GridOutput, error) {
	log := s.requestLogger(ctx)

	size, err := grid.ParseSize(input.Size)
	if err != nil {
		return nil, toHumaError(log, err)
	}

	g, err := s.services.Sign.Grid(ctx, size)
	if err != nil {
		return nil, toHumaError(log, err)
	}

	return &GridOutput{
		Body: GridResponse{
			Size:  int(size),
			Label: size.String(),
			Side:  g.Side(),
			Cells: g,
		},
	}, nil
}
