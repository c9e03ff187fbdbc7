package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextStyle describes how a line of text is drawn.
//
// Face is the glyph source; nil selects the default face. Styles compare
// equal when color and face are identical, which keeps recorded text ops
// comparable across renders.
type TextStyle struct {
	Color Color
	Face  font.Face
}

// DefaultFace returns the built-in bitmap face used when a style carries
// no explicit font.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// EffectiveFace returns the style's face with the nil default applied.
func (s TextStyle) EffectiveFace() font.Face {
	if s.Face == nil {
		return DefaultFace()
	}
	return s.Face
}

// MeasureText returns the pixel size of a single line of text in the
// given style. The height is the face's ascent plus descent, so stacked
// lines measured this way do not overlap.
func MeasureText(text string, style TextStyle) Size {
	face := style.EffectiveFace()
	metrics := face.Metrics()
	advance := font.MeasureString(face, text)
	return Size{
		Width:  fixedToFloat(advance),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

// TextBaseline returns the distance from the top of a drawn line to its
// baseline, for the given style.
func TextBaseline(style TextStyle) float64 {
	return fixedToFloat(style.EffectiveFace().Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
