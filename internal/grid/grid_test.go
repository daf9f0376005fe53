package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/luckysign/internal/color"
	"github.com/listenupapp/luckysign/internal/digits"
	domainerrors "github.com/listenupapp/luckysign/internal/errors"
)

func TestGenerate_Base(t *testing.T) {
	g, err := Generate(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9, g.Side())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, g[0])
	assert.Equal(t, []int{2, 4, 6, 8, 0, 2, 4, 6, 8}, g[1])
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, g[8])

	for i := range 9 {
		require.Len(t, g[i], 9)
		for j := range 9 {
			assert.Equal(t, ((i+1)*(j+1))%10, g[i][j])
		}
	}

	assert.Equal(t, Base(), g)
}

func TestGenerate_TwoByTwoQuadrantsMirror(t *testing.T) {
	g, err := Generate(1, 1)
	require.NoError(t, err)
	require.Equal(t, 18, g.Side())

	for i := range 18 {
		require.Len(t, g[i], 18)
	}

	// Mirror across the vertical centre line and the horizontal centre line.
	for i := range 18 {
		for j := range 18 {
			assert.Equal(t, g[i][j], g[i][17-j], "horizontal mirror at %d,%d", i, j)
			assert.Equal(t, g[i][j], g[17-i][j], "vertical mirror at %d,%d", i, j)
		}
	}

	// Top-left quadrant is the base table.
	base := Base()
	for i := range 9 {
		assert.Equal(t, base[i], g[i][:9])
	}
}

func TestGenerate_FourByFour(t *testing.T) {
	g, err := Generate(2, 2)
	require.NoError(t, err)
	require.Equal(t, 36, g.Side())
	for _, row := range g {
		require.Len(t, row, 36)
	}

	// The second mirror pass reflects the whole 18 wide row.
	for i := range 36 {
		for j := range 36 {
			assert.Equal(t, g[i][j], g[i][35-j])
			assert.Equal(t, g[i][j], g[35-i][j])
		}
	}
}

func TestGenerate_AsymmetricCounts(t *testing.T) {
	g, err := Generate(2, 0)
	require.NoError(t, err)
	assert.Len(t, g, 9)
	assert.Len(t, g[0], 36)

	g, err = Generate(0, 1)
	require.NoError(t, err)
	assert.Len(t, g, 18)
	assert.Len(t, g[0], 9)
}

func TestGenerate_RowsAreIndependent(t *testing.T) {
	g, err := Generate(0, 1)
	require.NoError(t, err)

	g[0][0] = 42
	assert.Equal(t, 1, g[17][0], "mirrored row must not alias the original")

	fresh, err := Generate(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh[0][0])
}

func TestGenerate_UnsupportedCounts(t *testing.T) {
	for _, counts := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		g, err := Generate(counts[0], counts[1])
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedSize)
		assert.Nil(t, g)
	}
}

func TestForSize(t *testing.T) {
	tests := []struct {
		size Size
		side int
	}{
		{Size1x1, 9},
		{Size2x2, 18},
		{Size4x4, 36},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			g, err := ForSize(tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.side, g.Side())
			assert.Equal(t, tt.side, tt.size.Side())
		})
	}

	g, err := ForSize(Size(3))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedSize)
	assert.Nil(t, g)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    Size
		wantErr bool
	}{
		{"0", Size1x1, false},
		{"1", Size2x2, false},
		{"2", Size4x4, false},
		{"1x1", Size1x1, false},
		{" 2X2 ", Size2x2, false},
		{"4x4", Size4x4, false},
		{"3", 0, true},
		{"3x3", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrUnsupportedSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	g, err := Generate(0, 0)
	require.NoError(t, err)

	colors := color.AutoColors{Main: "#388e3c", Background: "#f57c00"}
	sign := digits.SignDigits("01.01.2000.")

	cells := Resolve(g, sign, colors)
	require.Len(t, cells, 9)

	for i, row := range g {
		require.Len(t, cells[i], 9)
		for j, v := range row {
			if v == 0 || v == 1 || v == 2 {
				assert.Equal(t, colors.Main, cells[i][j])
			} else {
				assert.Equal(t, colors.Background, cells[i][j])
			}
		}
	}
}

func TestCountSigned(t *testing.T) {
	g := Base()

	assert.Equal(t, 0, CountSigned(g, digits.Of()))
	assert.Equal(t, 81, CountSigned(g, digits.Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)))
	// Zero appears where 5 meets an even factor: (5,2..8) and (2..8,5).
	assert.Equal(t, 8, CountSigned(g, digits.Of(0)))
}
