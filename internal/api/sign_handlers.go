package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/luckysign/internal/domain"
	"github.com/listenupapp/luckysign/internal/grid"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/service"
)

func (s *Server) registerSignRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "drawSign",
		Method:      http.MethodPost,
		Path:        "/api/v1/signs",
		Summary:     "Draw a sign",
		Description: "Builds a lucky sign from a birth date and optional name: colours, digit grid and the colour of every cell",
		Tags:        []string{"Signs"},
	}, s.handleDrawSign)

	huma.Register(s.api, huma.Operation{
		OperationID: "renderSign",
		Method:      http.MethodGet,
		Path:        "/api/v1/signs/image",
		Summary:     "Render a sign",
		Description: "Renders a lucky sign as a PNG image. The response carries a BlurHash placeholder and an ETag",
		Tags:        []string{"Signs"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PNG image",
				Content: map[string]*huma.MediaType{
					ContentTypePNG: {},
				},
			},
			"304": {Description: "Not modified"},
		},
	}, s.handleRenderSign)
}

// SignRequest is the body of a draw request. Field rules are enforced by
// the sign service so every rejection carries the same error shape.
type SignRequest struct {
	BirthDate       string `json:"birth_date,omitempty" doc:"Birth date as dd.MM.yyyy. or yyyy-MM-dd" example:"15.06.1990."`
	Name            string `json:"name,omitempty" doc:"Optional name; only Latin and Latvian letters count" example:"Jānis"`
	Size            *int   `json:"size,omitempty" doc:"Grid size code: 0 (9x9), 1 (18x18) or 2 (36x36)"`
	ColorMode       int    `json:"color_mode,omitempty" doc:"0 derives colours, 1 uses main_color and background_color"`
	MainColor       string `json:"main_color,omitempty" doc:"Custom main colour as #rrggbb" example:"#388e3c"`
	BackgroundColor string `json:"background_color,omitempty" doc:"Custom background colour as #rrggbb" example:"#f57c00"`
}

func (r SignRequest) toDraw() service.DrawRequest {
	return service.DrawRequest{
		BirthDate:       r.BirthDate,
		Name:            r.Name,
		Size:            r.Size,
		ColorMode:       domain.ColorMode(r.ColorMode),
		MainColor:       r.MainColor,
		BackgroundColor: r.BackgroundColor,
	}
}

// DrawSignInput wraps the draw request for Huma.
type DrawSignInput struct {
	Body SignRequest
}

// SignResponse is a drawn sign.
type SignResponse struct {
	domain.Sign
	Signed int `json:"signed_cells" doc:"Number of cells painted with the main colour"`
}

// DrawSignOutput wraps the sign response for Huma.
type DrawSignOutput struct {
	Body SignResponse
}

func (s *Server) handleDrawSign(ctx context.Context, input *DrawSignInput) (*DrawSignOutput, error) {
	sign, err := s.services.Sign.Draw(ctx, input.Body.toDraw())
	if err != nil {
		return nil, toHumaError(s.requestLogger(ctx), err)
	}

	return &DrawSignOutput{
		Body: SignResponse{Sign: *sign, Signed: sign.SignedCells()},
	}, nil
}

// RenderSignInput carries the image query.
type RenderSignInput struct {
	BirthDate       string `query:"birth_date" doc:"Birth date as dd.MM.yyyy. or yyyy-MM-dd" example:"15.06.1990."`
	Name            string `query:"name" doc:"Optional name"`
	Size            string `query:"size" doc:"Grid size code (0, 1, 2) or label (1x1, 2x2, 4x4)"`
	ColorMode       int    `query:"color_mode" doc:"0 derives colours, 1 uses main_color and background_color"`
	MainColor       string `query:"main_color" doc:"Custom main colour; the leading # is optional"`
	BackgroundColor string `query:"background_color" doc:"Custom background colour; the leading # is optional"`
	CellSize        int    `query:"cell_size" doc:"Cell edge in pixels; 0 uses the server default"`
	Digits          bool   `query:"digits" doc:"Draw each cell's digit"`
	Gap             int    `query:"gap" doc:"White line width between cells in pixels"`
	IfNoneMatch     string `header:"If-None-Match" doc:"ETag from a previous response"`
}

// RenderSignOutput is a PNG image or a 304.
type RenderSignOutput struct {
	Status       int
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	ETag         string `header:"ETag"`
	BlurHash     string `header:"X-Blurhash"`
	Body         []byte
}

func (s *Server) handleRenderSign(ctx context.Context, input *RenderSignInput) (*RenderSignOutput, error) {
	log := s.requestLogger(ctx)

	req := service.DrawRequest{
		BirthDate:       input.BirthDate,
		Name:            input.Name,
		ColorMode:       domain.ColorMode(input.ColorMode),
		MainColor:       withHash(input.MainColor),
		BackgroundColor: withHash(input.BackgroundColor),
	}
	if input.Size != "" {
		size, err := grid.ParseSize(input.Size)
		if err != nil {
			return nil, toHumaError(log, err)
		}
		code := int(size)
		req.Size = &code
	}

	res, err := s.services.Sign.Render(ctx, req, service.RenderOptions{
		CellSize: input.CellSize,
		Digits:   input.Digits,
		Gap:      input.Gap,
	})
	if err != nil {
		return nil, toHumaError(log, err)
	}

	out := &RenderSignOutput{
		CacheControl: CacheOneDay,
		ETag:         res.ETag,
		BlurHash:     res.BlurHash,
	}
	if etagMatches(input.IfNoneMatch, res.ETag) {
		out.Status = http.StatusNotModified
		return out, nil
	}

	out.Status = http.StatusOK
	out.ContentType = ContentTypePNG
	out.Body = res.PNG
	return out, nil
}

// requestLogger returns the request-scoped logger set by the middleware.
func (s *Server) requestLogger(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx, s.logger)
}

// withHash prefixes a colour with '#' when the caller left it off, which is
// common in query strings where '#' has to be escaped.
func withHash(v string) string {
	if v == "" || strings.HasPrefix(v, "#") {
		return v
	}
	return "#" + v
}

// etagMatches reports whether an If-None-Match header names etag.
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
