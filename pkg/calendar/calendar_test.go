package calendar_test

import (
	"testing"

	"github.com/arthur-debert/gitcal/pkg/calendar"
	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/arthur-debert/gitcal/pkg/palette"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	c := calendar.New()
	assert.Equal(t, palette.Default(), c.Palette())
	assert.Equal(t, calendar.StyleSmallSquare, c.Style())
	assert.Equal(t, calendar.DefaultDisplayOptions(), c.Options())
	assert.Equal(t, termenv.TrueColor, c.ColorProfile())
	assert.Nil(t, c.Grid())
	assert.Nil(t, c.Months())
}

func TestBuilderReturnsCopies(t *testing.T) {
	base := calendar.New()
	grid := calendar.NewGrid(2)
	months := []calendar.Month{{Name: "Jan", Weeks: 2}}

	c := base.
		WithGrid(grid).
		WithMonths(months).
		WithStyle(calendar.StyleHalfBlock).
		WithShowWeekdays(false).
		WithShowMonths(false).
		WithLegend(true).
		WithColorProfile(termenv.Ascii)

	assert.Equal(t, grid, c.Grid())
	assert.Equal(t, months, c.Months())
	assert.Equal(t, calendar.StyleHalfBlock, c.Style())
	assert.Equal(t, calendar.DisplayOptions{ShowLegend: true}, c.Options())
	assert.Equal(t, termenv.Ascii, c.ColorProfile())

	// base is untouched
	assert.Equal(t, calendar.New(), base)

	opts := calendar.DisplayOptions{ShowMonths: true}
	assert.Equal(t, opts, base.WithOptions(opts).Options())
}

func TestGrid(t *testing.T) {
	g := calendar.NewGrid(3)
	require.Len(t, g, calendar.DaysPerWeek)
	assert.Equal(t, 3, g.Weeks())

	g.Set(6, 2, calendar.LevelThird)
	assert.Equal(t, calendar.LevelThird, g.At(6, 2))
	assert.Equal(t, calendar.LevelNone, g.At(0, 0))

	assert.Equal(t, 0, calendar.Grid(nil).Weeks())
}

func TestValidate(t *testing.T) {
	jan := []calendar.Month{{Name: "Jan", Weeks: 2}}

	tests := []struct {
		name    string
		cal     func() calendar.Calendar
		wantErr errors.ErrorCode
	}{
		{
			name: "valid",
			cal: func() calendar.Calendar {
				return calendar.New().WithGrid(calendar.NewGrid(2)).WithMonths(jan)
			},
		},
		{
			name: "too few rows",
			cal: func() calendar.Calendar {
				return calendar.New().WithGrid(calendar.NewGrid(2)[:6]).WithMonths(jan)
			},
			wantErr: errors.ErrGridShape,
		},
		{
			name: "ragged rows",
			cal: func() calendar.Calendar {
				g := calendar.NewGrid(2)
				g[4] = g[4][:1]
				return calendar.New().WithGrid(g).WithMonths(jan)
			},
			wantErr: errors.ErrGridShape,
		},
		{
			name: "invalid level",
			cal: func() calendar.Calendar {
				g := calendar.NewGrid(2)
				g.Set(1, 1, calendar.Level(7))
				return calendar.New().WithGrid(g).WithMonths(jan)
			},
			wantErr: errors.ErrInvalidLevel,
		},
		{
			name: "month span sum mismatch",
			cal: func() calendar.Calendar {
				return calendar.New().WithGrid(calendar.NewGrid(3)).WithMonths(jan)
			},
			wantErr: errors.ErrGridShape,
		},
		{
			name: "non-positive month span",
			cal: func() calendar.Calendar {
				months := []calendar.Month{{Name: "Jan", Weeks: 2}, {Name: "Feb", Weeks: 0}}
				return calendar.New().WithGrid(calendar.NewGrid(2)).WithMonths(months)
			},
			wantErr: errors.ErrGridShape,
		},
		{
			name: "months ignored when header hidden",
			cal: func() calendar.Calendar {
				return calendar.New().WithGrid(calendar.NewGrid(3)).WithMonths(jan).WithShowMonths(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cal().Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantErr), "got %v", err)
		})
	}
}
