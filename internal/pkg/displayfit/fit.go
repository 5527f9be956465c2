// Package displayfit sizes an image for display inside a desired box.
//
// An image larger than the box is scaled down. When both box sides are
// given, the image covers the box: one side matches exactly and the other
// overflows, with a negative margin that centers the overflow.
package displayfit

import (
	"fmt"
	"strings"
)

// Box is the rendered size of an image and the margins that center any
// overflow of the desired box.
type Box struct {
	Width      int
	Height     int
	MarginLeft int
	MarginTop  int
}

// Fit computes the display box. A desired side of zero leaves that side
// unconstrained. Images that do not exceed the box on a constrained side keep
// their natural size.
func Fit(naturalWidth, naturalHeight, desiredWidth, desiredHeight int) Box {
	width, height := naturalWidth, naturalHeight

	exceeds := (desiredWidth > 0 && naturalWidth > desiredWidth) ||
		(desiredHeight > 0 && naturalHeight > desiredHeight)

	if exceeds && naturalWidth > 0 && naturalHeight > 0 {
		switch {
		case desiredWidth == 0:
			width, height = scale(naturalWidth, desiredHeight, naturalHeight), desiredHeight
		case desiredHeight == 0:
			width, height = desiredWidth, scale(naturalHeight, desiredWidth, naturalWidth)
		default:
			width, height = contain(naturalWidth, naturalHeight, desiredWidth, desiredHeight)
			if width < desiredWidth || height < desiredHeight {
				if desiredWidth-width > desiredHeight-height {
					width, height = desiredWidth, scale(naturalHeight, desiredWidth, naturalWidth)
				} else {
					width, height = scale(naturalWidth, desiredHeight, naturalHeight), desiredHeight
				}
			}
		}
	}

	box := Box{Width: width, Height: height}
	if desiredWidth > 0 && width > desiredWidth {
		box.MarginLeft = (width - desiredWidth) / 2
	}
	if desiredHeight > 0 && height > desiredHeight {
		box.MarginTop = (height - desiredHeight) / 2
	}
	return box
}

// Style returns the margin declarations, e.g. "margin-left:-66px".
func (b Box) Style() string {
	var decls []string
	if b.MarginLeft > 0 {
		decls = append(decls, fmt.Sprintf("margin-left:-%dpx", b.MarginLeft))
	}
	if b.MarginTop > 0 {
		decls = append(decls, fmt.Sprintf("margin-top:-%dpx", b.MarginTop))
	}
	return strings.Join(decls, ";")
}

// contain scales by min(desiredWidth/naturalWidth, desiredHeight/naturalHeight)
// and floors the side that does not hit the box.
func contain(naturalWidth, naturalHeight, desiredWidth, desiredHeight int) (int, int) {
	if int64(desiredWidth)*int64(naturalHeight) <= int64(desiredHeight)*int64(naturalWidth) {
		return desiredWidth, scale(naturalHeight, desiredWidth, naturalWidth)
	}
	return scale(naturalWidth, desiredHeight, naturalHeight), desiredHeight
}

// scale returns floor(side * num / den).
func scale(side, num, den int) int {
	return int(int64(side) * int64(num) / int64(den))
}
