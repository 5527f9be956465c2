package request

import (
	"strings"

	"github.com/samber/lo"
)

// DimensionsNone stores the file as-is even when default dimensions are
// configured.
const DimensionsNone = "none"

// UploadRequest holds the form fields sent next to the file. Dimensions may
// be repeated, comma separated, or both.
type UploadRequest struct {
	Dimensions []string `form:"dimensions"`
	Mode       string   `form:"mode" binding:"omitempty,oneof=width height both"`
	Token      string   `form:"token" binding:"omitempty,alphanum,max=32"`
}

// DimensionList flattens the dimensions field into single "WxH" entries.
func (r UploadRequest) DimensionList() []string {
	dims := lo.FlatMap(r.Dimensions, func(field string, _ int) []string {
		return strings.Split(field, ",")
	})
	dims = lo.Map(dims, func(d string, _ int) string { return strings.TrimSpace(d) })
	return lo.Compact(dims)
}

// RelocateOnly reports whether the request opted out of resizing.
func (r UploadRequest) RelocateOnly() bool {
	return lo.ContainsBy(r.DimensionList(), func(d string) bool {
		return strings.EqualFold(d, DimensionsNone)
	})
}

type RenderRequest struct {
	Src           string `form:"src" binding:"required"`
	Caption       string `form:"caption"`
	NaturalWidth  int    `form:"natural_width" binding:"min=0"`
	NaturalHeight int    `form:"natural_height" binding:"min=0"`
	Width         int    `form:"width" binding:"min=0"`
	Height        int    `form:"height" binding:"min=0"`
	Class         string `form:"class"`
	Style         string `form:"style"`
}

// Attributes returns the caller attributes that were set.
func (r RenderRequest) Attributes() map[string]string {
	return lo.OmitByValues(map[string]string{
		"class": r.Class,
		"style": r.Style,
	}, []string{""})
}
