package displayfit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/image-variants/internal/pkg/displayfit"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name               string
		naturalW, naturalH int
		desiredW, desiredH int
		want               displayfit.Box
	}{
		{"width only scales height", 800, 600, 400, 0, displayfit.Box{Width: 400, Height: 300}},
		{"height only scales width", 800, 600, 0, 300, displayfit.Box{Width: 400, Height: 300}},
		{"cover crops width", 800, 600, 400, 400, displayfit.Box{Width: 533, Height: 400, MarginLeft: 66}},
		{"cover crops height", 600, 800, 400, 400, displayfit.Box{Width: 400, Height: 533, MarginTop: 66}},
		{"same ratio fits exactly", 800, 600, 400, 300, displayfit.Box{Width: 400, Height: 300}},
		{"smaller image keeps natural size", 300, 200, 400, 400, displayfit.Box{Width: 300, Height: 200}},
		{"no desired size keeps natural size", 800, 600, 0, 0, displayfit.Box{Width: 800, Height: 600}},
		{"unconstrained side does not trigger", 300, 600, 400, 0, displayfit.Box{Width: 300, Height: 600}},
		{"wide image into square", 1000, 500, 300, 300, displayfit.Box{Width: 600, Height: 300, MarginLeft: 150}},
		{"tall image into wide box", 1000, 1000, 400, 200, displayfit.Box{Width: 400, Height: 400, MarginTop: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayfit.Fit(tt.naturalW, tt.naturalH, tt.desiredW, tt.desiredH))
		})
	}
}

func TestFit_CoverUsesPerAxisShortfall(t *testing.T) {
	// contain gives 400x120; the height shortfall (180) is the larger one,
	// so the box is refit to the full height and the width overflows.
	box := displayfit.Fit(1000, 300, 400, 300)

	assert.Equal(t, displayfit.Box{Width: 1000, Height: 300, MarginLeft: 300}, box)
	assert.GreaterOrEqual(t, box.Width, 400)
	assert.GreaterOrEqual(t, box.Height, 300)
}

func TestFit_CoverHasMarginOnExactlyOneAxis(t *testing.T) {
	box := displayfit.Fit(800, 600, 400, 400)

	assert.GreaterOrEqual(t, box.Width, 400)
	assert.GreaterOrEqual(t, box.Height, 400)
	assert.True(t, (box.MarginLeft > 0) != (box.MarginTop > 0))
}

func TestBox_Style(t *testing.T) {
	t.Run("empty without margins", func(t *testing.T) {
		assert.Empty(t, displayfit.Box{Width: 10, Height: 10}.Style())
	})

	t.Run("left margin", func(t *testing.T) {
		assert.Equal(t, "margin-left:-66px", displayfit.Box{MarginLeft: 66}.Style())
	})

	t.Run("both margins are kept", func(t *testing.T) {
		assert.Equal(t, "margin-left:-5px;margin-top:-7px", displayfit.Box{MarginLeft: 5, MarginTop: 7}.Style())
	})
}
