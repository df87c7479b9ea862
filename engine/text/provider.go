package text

import (
	"math"
	"strings"

	"github.com/quiltui/quilt/ui"
)

// Provider turns font atlases into a text backend for the widget engine.
// Wrapping is greedy word wrap on nominal advances; each resulting line is
// shaped through HarfBuzz for final positioning, so kerning and ligatures
// apply within a line. Not safe for concurrent use.
type Provider struct {
	fonts map[string]*Font
	def   *Font
	sh    shaper
}

func NewProvider() *Provider {
	return &Provider{fonts: make(map[string]*Font)}
}

// Add registers a font under name. The first font added becomes the
// fallback for styles that name no font or an unknown one.
func (p *Provider) Add(name string, f *Font) {
	p.fonts[name] = f
	if p.def == nil {
		p.def = f
	}
}

func (p *Provider) font(name string) *Font {
	if f, ok := p.fonts[name]; ok {
		return f
	}
	return p.def
}

// Measure implements ui.TextProvider.
func (p *Provider) Measure(text string, heightPx, wrapWidth int, style ui.TextStyle) ui.Point {
	f := p.font(style.Font)
	if f == nil || text == "" || heightPx <= 0 {
		return ui.Point{}
	}
	scale := float32(heightPx) / f.SizePx
	rtl := resolveRTL(text, style)

	lines := p.splitLines(f, text, scale, wrapWidth)
	var widest float32
	for _, line := range lines {
		_, w := p.sh.shape(f, line, float32(heightPx), rtl, style.Locale)
		if w > widest {
			widest = w
		}
	}
	return ui.Point{
		X: int(math.Ceil(float64(widest))),
		Y: heightPx * len(lines),
	}
}

// Draw implements ui.TextProvider. pos is the top-left corner of the text
// block in physical pixels.
func (p *Provider) Draw(r ui.Renderer, text string, pos ui.Point, heightPx, wrapWidth int, style ui.TextStyle) {
	f := p.font(style.Font)
	if f == nil || text == "" || heightPx <= 0 {
		return
	}
	scale := float32(heightPx) / f.SizePx
	rtl := resolveRTL(text, style)
	ascent := f.Ascent * scale

	lines := p.splitLines(f, text, scale, wrapWidth)
	for i, line := range lines {
		glyphs, lineW := p.sh.shape(f, line, float32(heightPx), rtl, style.Locale)

		startX := float32(pos.X)
		if rtl && wrapWidth > 0 {
			startX = float32(pos.X) + float32(wrapWidth) - lineW
		}
		baseY := float32(pos.Y) + float32(i*heightPx) + ascent

		for _, sg := range glyphs {
			if sg.Cluster < 0 || sg.Cluster >= len(line) {
				continue
			}
			g, ok := f.Glyphs[line[sg.Cluster]]
			if !ok || g.W == 0 || g.H == 0 {
				continue
			}
			r.DrawTextureUV(f.Atlas,
				ui.Point{
					X: int(startX + sg.X + g.BearingX*scale),
					Y: int(baseY + sg.Y - g.BearingY*scale),
				},
				ui.Point{
					X: int(float32(g.W) * scale),
					Y: int(float32(g.H) * scale),
				},
				g.U0, g.V0, g.U1, g.V1, style.Color)
		}
	}
}

// splitLines breaks text on newlines and, when wrapWidth > 0, greedily
// wraps words whose nominal advance overflows the width. Wrap decisions
// use atlas advances, not shaped widths.
func (p *Provider) splitLines(f *Font, text string, scale float32, wrapWidth int) [][]rune {
	var lines [][]rune
	for _, para := range strings.Split(text, "\n") {
		if wrapWidth <= 0 {
			lines = append(lines, []rune(para))
			continue
		}
		lines = append(lines, p.wrapParagraph(f, para, scale, float32(wrapWidth))...)
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}

func (p *Provider) wrapParagraph(f *Font, para string, scale, maxW float32) [][]rune {
	words := strings.Fields(para)
	if len(words) == 0 {
		return [][]rune{[]rune(para)}
	}
	spaceW := p.nominalWidth(f, []rune(" "), scale)

	var lines [][]rune
	var cur []rune
	var curW float32
	for _, word := range words {
		wr := []rune(word)
		ww := p.nominalWidth(f, wr, scale)
		switch {
		case len(cur) == 0:
			cur, curW = wr, ww
		case curW+spaceW+ww <= maxW:
			cur = append(append(cur, ' '), wr...)
			curW += spaceW + ww
		default:
			lines = append(lines, cur)
			cur, curW = wr, ww
		}
	}
	lines = append(lines, cur)
	return lines
}

func (p *Provider) nominalWidth(f *Font, runes []rune, scale float32) float32 {
	var w float32
	for _, r := range runes {
		if g, ok := f.Glyphs[r]; ok {
			w += g.Advance * scale
		}
	}
	return w
}
