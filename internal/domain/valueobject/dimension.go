package valueobject

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/image-variants/internal/domain"
)

// Dimension is one requested output size. Label keeps the caller's original
// "WxH" string so results can be keyed by exactly what was asked for.
type Dimension struct {
	Label  string
	Width  int
	Height int
}

func ParseDimension(spec string) (Dimension, error) {
	label := strings.TrimSpace(spec)
	parts := strings.Split(strings.ToLower(label), "x")
	if len(parts) != 2 {
		return Dimension{}, fmt.Errorf("%w: %q", domain.ErrInvalidDimension, spec)
	}

	width, err := parseSide(parts[0])
	if err != nil {
		return Dimension{}, fmt.Errorf("%w: %q: width: %v", domain.ErrInvalidDimension, spec, err)
	}
	height, err := parseSide(parts[1])
	if err != nil {
		return Dimension{}, fmt.Errorf("%w: %q: height: %v", domain.ErrInvalidDimension, spec, err)
	}
	if width == 0 && height == 0 {
		return Dimension{}, fmt.Errorf("%w: %q: both sides are zero", domain.ErrInvalidDimension, spec)
	}

	return Dimension{Label: label, Width: width, Height: height}, nil
}

func ParseDimensions(specs []string) ([]Dimension, error) {
	dims := make([]Dimension, 0, len(specs))
	for _, spec := range specs {
		dim, err := ParseDimension(spec)
		if err != nil {
			return nil, err
		}
		dims = append(dims, dim)
	}
	return dims, nil
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

func parseSide(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
