package render

import (
	"html"
	"strconv"

	"github.com/marcos-nsantos/image-variants/internal/pkg/displayfit"
)

// ImageInput describes an image to place inside a desired box. A desired
// side of zero leaves that side unconstrained.
type ImageInput struct {
	Src           string
	Caption       string
	NaturalWidth  int
	NaturalHeight int
	DesiredWidth  int
	DesiredHeight int
	Attributes    map[string]string
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ImageAttributes returns the attributes of an img tag showing the image
// fitted to the desired box. Caller attributes are kept; src, alt, title,
// width, height and style are always set. A caller style is appended after
// the centering margins.
func (s *Service) ImageAttributes(input ImageInput) map[string]string {
	box := displayfit.Fit(input.NaturalWidth, input.NaturalHeight, input.DesiredWidth, input.DesiredHeight)

	attrs := make(map[string]string, len(input.Attributes)+6)
	for k, v := range input.Attributes {
		attrs[k] = v
	}

	caption := html.EscapeString(input.Caption)
	attrs["src"] = input.Src
	attrs["alt"] = caption
	attrs["title"] = caption
	attrs["width"] = strconv.Itoa(box.Width)
	attrs["height"] = strconv.Itoa(box.Height)
	attrs["style"] = joinStyle(box.Style(), input.Attributes["style"])

	return attrs
}

func joinStyle(margins, style string) string {
	switch {
	case margins == "":
		return style
	case style == "":
		return margins
	default:
		return margins + ";" + style
	}
}
