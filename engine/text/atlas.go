package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	tsfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	glbackend "github.com/quiltui/quilt/engine/gfx/gl"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// AtlasTexture is the uploaded glyph sheet. It satisfies the interface
// texture contract so glyph quads go through the same draw path as images.
type AtlasTexture struct {
	id   uint32
	w, h int
}

func (t *AtlasTexture) Size() (int, int) { return t.w, t.h }
func (t *AtlasTexture) Ready() bool      { return t.id != 0 }
func (t *AtlasTexture) GLID() uint32     { return t.id }

// Font is a rasterized face at a fixed pixel size plus its source bytes.
// Glyphs are scaled at draw time, so one atlas serves every label height;
// rasterize at the largest size commonly displayed.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Atlas                    *AtlasTexture
	AtlasW, AtlasH           int
	Face                     font.Face

	ttf       []byte // source bytes kept for the shaper
	shapeFace *tsfont.Face
	closeFace func()
}

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// LineHeight is the baseline-to-baseline distance at the native size.
func (f *Font) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

// LoadTTF builds a monochrome (white) glyph atlas (alpha coverage) and
// uploads it as an RGBA texture.
func LoadTTF(path string, sizePx float32) (*Font, error) {
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(ttfData, sizePx)
}

// Parse builds the atlas from raw TTF bytes.
func Parse(ttfData []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	// Target rune set (Latin-1). Expand later as needed.
	var runes []rune
	for r := rune(32); r <= rune(255); r++ {
		runes = append(runes, r)
	}

	// Measure all glyph bounds/advances to pack a simple shelf atlas
	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: rr,
			w: (br.Max.X - br.Min.X).Round(), h: (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()), // distance from baseline to top
		})
	}

	// Very simple shelf packer (rows). Start with 512^2 and grow until
	// everything fits.
	const padding = 4
	atlasSize := 512
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	// Build atlas RGBA: white glyphs with alpha coverage
	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		p := pos[g.r]
		if g.w == 0 || g.h == 0 {
			glyphs[g.r] = Glyph{
				Rune: g.r, Advance: g.adv,
				BearingX: g.bx, BearingY: g.by,
				W: g.w, H: g.h,
			}
			continue
		}

		// Drawer expects a dot at the baseline; shift left by bearingX.
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))

		glyphs[g.r] = Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
			U0: float32(p.X) / float32(atlasSize),
			V0: float32(p.Y) / float32(atlasSize),
			U1: float32(p.X+g.w) / float32(atlasSize),
			V1: float32(p.Y+g.h) / float32(atlasSize),
		}
	}

	atlas := &AtlasTexture{
		id: glbackend.NewTexture(atlasSize, atlasSize, dst.Pix),
		w:  atlasSize, h: atlasSize,
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		Atlas:  atlas,
		AtlasW: atlasSize, AtlasH: atlasSize,
		Face:      face,
		ttf:       ttfData,
		closeFace: func() { _ = face.Close() },
	}, nil
}
