package text

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedGlyph positions one atlas glyph within a shaped run. Cluster maps
// the glyph back to the rune index that produced it.
type shapedGlyph struct {
	Cluster  int
	X, Y     float32 // pen offsets in pixels
	XAdvance float32
}

// shaper wraps a HarfBuzz shaper. Not safe for concurrent use; the
// provider serializes access.
type shaper struct {
	hb shaping.HarfbuzzShaper
}

// shape runs the whole string as a single run. The caller decides
// direction; mixed-direction text is laid out the way the dominant
// direction dictates.
func (s *shaper) shape(f *Font, runes []rune, sizePx float32, rtl bool, locale string) ([]shapedGlyph, float32) {
	face := f.shapingFace()
	if face == nil || len(runes) == 0 {
		return nil, 0
	}

	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}
	lang := language.DefaultLanguage()
	if locale != "" {
		lang = language.NewLanguage(locale)
	}

	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      fixed.Int26_6(sizePx * 64),
		Script:    detectScript(runes),
		Language:  lang,
	})

	glyphs := make([]shapedGlyph, 0, len(out.Glyphs))
	var penX float32
	for _, g := range out.Glyphs {
		glyphs = append(glyphs, shapedGlyph{
			Cluster:  g.TextIndex(),
			X:        penX + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.XAdvance),
		})
		penX += fixedToFloat(g.XAdvance)
	}
	return glyphs, penX
}

func fixedToFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// shapingFace lazily parses the source bytes for the shaper. The raster
// face from x/image cannot be shared with it.
func (f *Font) shapingFace() *tsfont.Face {
	if f.shapeFace == nil && len(f.ttf) > 0 {
		face, err := tsfont.ParseTTF(bytes.NewReader(f.ttf))
		if err != nil {
			f.ttf = nil
			return nil
		}
		f.shapeFace = face
	}
	return f.shapeFace
}
