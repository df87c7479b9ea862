package text

import (
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/quiltui/quilt/ui"
)

// rtlScripts are the scripts whose default paragraph direction is
// right-to-left.
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
}

// resolveRTL decides whether a string renders right-to-left. An explicit
// direction in the style wins; otherwise the locale's likely script is
// consulted, and failing that the text itself via the bidi algorithm.
func resolveRTL(text string, style ui.TextStyle) bool {
	switch style.Direction {
	case ui.TextDirectionLTR:
		return false
	case ui.TextDirectionRTL:
		return true
	}

	if style.Locale != "" {
		if tag, err := language.Parse(style.Locale); err == nil {
			script, conf := tag.Script()
			if conf > language.No && rtlScripts[script.String()] {
				return true
			}
			if conf > language.No {
				return false
			}
		}
	}

	var p bidi.Paragraph
	_, _ = p.SetString(text)
	if _, err := p.Order(); err != nil {
		return false
	}
	return p.Direction() == bidi.RightToLeft
}
