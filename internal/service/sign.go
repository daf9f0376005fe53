package service

import (
	"context"
	"time"

	"github.com/listenupapp/luckysign/internal/cache"
	"github.com/listenupapp/luckysign/internal/color"
	"github.com/listenupapp/luckysign/internal/config"
	"github.com/listenupapp/luckysign/internal/digits"
	"github.com/listenupapp/luckysign/internal/domain"
	domainerrors "github.com/listenupapp/luckysign/internal/errors"
	"github.com/listenupapp/luckysign/internal/grid"
	"github.com/listenupapp/luckysign/internal/id"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/normalize"
	"github.com/listenupapp/luckysign/internal/render"
	"github.com/listenupapp/luckysign/internal/validation"
)

// RenderCache stores encoded images between requests as JSON values.
type RenderCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

// DrawRequest describes a sign to draw.
type DrawRequest struct {
	BirthDate string `json:"birth_date" validate:"required,birthdate"`
	Name      string `json:"name,omitempty" validate:"max=200"`
	// Size is a grid size code; nil uses the configured default.
	Size            *int             `json:"size,omitempty" validate:"omitempty,gte=0,lte=2"`
	ColorMode       domain.ColorMode `json:"color_mode" validate:"colormode"`
	MainColor       string           `json:"main_color,omitempty" validate:"required_if=ColorMode 1,omitempty,hexcolor"`
	BackgroundColor string           `json:"background_color,omitempty" validate:"required_if=ColorMode 1,omitempty,hexcolor"`
}

// RenderOptions controls image output. Zero CellSize uses the configured default.
type RenderOptions struct {
	CellSize int  `json:"cell_size"`
	Digits   bool `json:"digits"`
	Gap      int  `json:"gap"`
}

// SignService draws signs and derives their colours.
type SignService struct {
	validator   *validation.Validator
	cache       RenderCache
	logger      *logger.Logger
	defaultSize grid.Size
	cellSize    int
	now         func() time.Time
}

// NewSignService creates a sign service. cache may be nil to render every request.
func NewSignService(v *validation.Validator, c RenderCache, cfg *config.Config, log *logger.Logger) *SignService {
	return &SignService{
		validator:   v,
		cache:       c,
		logger:      log.WithComponent("sign"),
		defaultSize: grid.Size(cfg.Sign.DefaultSize),
		cellSize:    cfg.Render.CellSize,
		now:         time.Now,
	}
}

// Draw validates req and builds the sign: colours, grid and per-cell colour.
func (s *SignService) Draw(ctx context.Context, req DrawRequest) (*domain.Sign, error) {
	if err := s.validator.Validate(req); err != nil {
		s.logger.Warn("rejected sign request", "error", err)
		return nil, err
	}

	birth, err := domain.ParseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	size := s.defaultSize
	if req.Size != nil {
		size = grid.Size(*req.Size)
	}
	g, err := grid.ForSize(size)
	if err != nil {
		return nil, err
	}

	letters := normalize.NameLetters(req.Name)
	colors, method, err := s.chooseColors(req, birth, letters)
	if err != nil {
		return nil, err
	}

	signID, err := id.NewSignID()
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate sign id")
	}

	sign := digits.SignDigits(birth.String())
	result := &domain.Sign{
		ID:        signID,
		Name:      req.Name,
		BirthDate: birth,
		Size:      int(size),
		SizeLabel: size.String(),
		Side:      g.Side(),
		Mode:      req.ColorMode,
		Method:    method,
		Colors:    colors,
		Digits:    sign.Slice(),
		Grid:      g,
		Cells:     grid.Resolve(g, sign, colors),
		CreatedAt: s.now(),
	}

	logger.FromContext(ctx, s.logger).Debug("sign drawn",
		"sign_id", result.ID,
		"size", result.SizeLabel,
		"method", method,
		"main", colors.Main,
		"background", colors.Background,
	)

	return result, nil
}

// chooseColors returns caller colours in custom mode and derived colours otherwise.
func (s *SignService) chooseColors(req DrawRequest, birth domain.BirthDate, letters string) (color.AutoColors, color.Method, error) {
	if req.ColorMode == domain.ColorModeCustom {
		main, err := color.NormalizeHex(req.MainColor)
		if err != nil {
			return color.AutoColors{}, "", err
		}
		background, err := color.NormalizeHex(req.BackgroundColor)
		if err != nil {
			return color.AutoColors{}, "", err
		}
		return color.AutoColors{Main: main, Background: background}, domain.ColorMethodCustom, nil
	}

	d, err := color.Derive(birth.Day, birth.Month, birth.Year, letters)
	if err != nil {
		return color.AutoColors{}, "", err
	}
	return d.Colors, d.Method, nil
}

// Colors reports the auto colours for a birth date and optional name.
func (s *SignService) Colors(ctx context.Context, birthDate, name string) (*domain.ColorReport, error) {
	birth, err := domain.ParseBirthDate(birthDate)
	if err != nil {
		s.logger.Warn("rejected colour request", "birth_date", birthDate, "error", err)
		return nil, err
	}

	letters := normalize.NameLetters(name)
	d, err := color.Derive(birth.Day, birth.Month, birth.Year, letters)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Debug("colours derived",
		"method", d.Method,
		"date_digit", d.DateDigit,
		"name_digit", d.NameDigit,
	)

	return &domain.ColorReport{
		BirthDate: birth,
		Letters:   letters,
		Method:    d.Method,
		Colors:    d.Colors,
		DateDigit: d.DateDigit,
		NameDigit: d.NameDigit,
	}, nil
}

// Grid returns the digit table for a size code.
func (s *SignService) Grid(_ context.Context, size grid.Size) (grid.Grid, error) {
	return grid.ForSize(size)
}

// Palette returns the nine numerology colours.
func (s *SignService) Palette() []color.PaletteEntry {
	return color.Palette()
}

// renderKey identifies an image by everything that affects its pixels.
type renderKey struct {
	Colors   color.AutoColors `json:"colors"`
	Size     int              `json:"size"`
	Digits   []int            `json:"digits"`
	Options  RenderOptions    `json:"options"`
	Renderer int              `json:"renderer"`
}

// rendererVersion is bumped whenever the image output changes.
const rendererVersion = 1

// Render draws the sign for req and encodes it as a PNG. Identical images
// are served from the cache when one is configured.
func (s *SignService) Render(ctx context.Context, req DrawRequest, opts RenderOptions) (*render.Result, error) {
	if opts.CellSize == 0 {
		opts.CellSize = s.cellSize
	}
	if opts.CellSize < render.MinCellSize || opts.CellSize > render.MaxCellSize {
		return nil, domainerrors.Validationf("cell_size must be between %d and %d", render.MinCellSize, render.MaxCellSize)
	}
	if opts.Gap < 0 || opts.Gap >= opts.CellSize/2 {
		return nil, domainerrors.Validationf("gap must be between 0 and %d", opts.CellSize/2-1)
	}

	sign, err := s.Draw(ctx, req)
	if err != nil {
		return nil, err
	}

	key, err := cache.Key("render", renderKey{
		Colors:   sign.Colors,
		Size:     sign.Size,
		Digits:   sign.Digits,
		Options:  opts,
		Renderer: rendererVersion,
	})
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to build render key")
	}

	log := logger.FromContext(ctx, s.logger)

	if cached, ok := s.cached(ctx, key); ok {
		log.Debug("render cache hit", "sign_id", sign.ID)
		return cached, nil
	}

	res, err := render.Render(sign.Cells, sign.Grid, render.Options{
		CellSize: opts.CellSize,
		Digits:   opts.Digits,
		Gap:      opts.Gap,
	})
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to render sign")
	}

	s.store(ctx, key, res)
	log.Debug("sign rendered", "sign_id", sign.ID, "bytes", len(res.PNG), "width", res.Width)

	return res, nil
}

// cachedResult is the stored form of a render.Result.
type cachedResult struct {
	PNG      []byte `json:"png"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BlurHash string `json:"blurhash"`
	ETag     string `json:"etag"`
}

func (s *SignService) cached(ctx context.Context, key string) (*render.Result, bool) {
	if s.cache == nil {
		return nil, false
	}

	var c cachedResult
	ok, err := s.cache.GetJSON(ctx, key, &c)
	if err != nil {
		s.logger.WithError(err).Warn("render cache read failed", "key", key)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &render.Result{PNG: c.PNG, Width: c.Width, Height: c.Height, BlurHash: c.BlurHash, ETag: c.ETag}, true
}

func (s *SignService) store(ctx context.Context, key string, res *render.Result) {
	if s.cache == nil {
		return
	}
	err := s.cache.SetJSON(ctx, key, cachedResult{
		PNG:      res.PNG,
		Width:    res.Width,
		Height:   res.Height,
		BlurHash: res.BlurHash,
		ETag:     res.ETag,
	})
	if err != nil {
		s.logger.WithError(err).Warn("render cache write failed", "key", key)
	}
}
