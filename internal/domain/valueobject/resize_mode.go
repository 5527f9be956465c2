package valueobject

import (
	"fmt"
	"strings"

	"github.com/marcos-nsantos/image-variants/internal/domain"
)

type ResizeMode string

const (
	// ResizeBoth fits the image inside width x height, shrink only.
	ResizeBoth ResizeMode = "both"
	// ResizeWidth forces the requested width and derives the height.
	ResizeWidth ResizeMode = "width"
	// ResizeHeight forces the requested height and derives the width.
	ResizeHeight ResizeMode = "height"
)

func ParseResizeMode(s string) (ResizeMode, error) {
	switch mode := ResizeMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ResizeBoth, nil
	case ResizeBoth, ResizeWidth, ResizeHeight:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidResizeMode, s)
	}
}

func (m ResizeMode) String() string {
	return string(m)
}
