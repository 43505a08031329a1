package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/tzclock/internal/viz"
	"github.com/san-kum/tzclock/internal/zone"
)

// Face is one labelled analog clock.
type Face struct {
	Name   string
	Angles zone.Angles
}

// Colors used in exported images.
type Colors struct {
	Background string
	Dial       string
	Hands      string
	Second     string
	Label      string
}

// ThemeColors picks image colours from a TUI theme.
func ThemeColors(t viz.Theme) Colors {
	return Colors{
		Background: string(t.Background),
		Dial:       string(t.Muted),
		Hands:      string(t.Text),
		Second:     string(t.Error),
		Label:      string(t.Primary),
	}
}

const (
	faceSize   = 160.0
	faceRadius = 64.0
	labelSpace = 28.0
)

// FacesSVG draws faces side by side. Hands are horizontal lines pointing at
// 9 o'clock rotated clockwise by their angle, so the angles are used as is.
func FacesSVG(faces []Face, c Colors) string {
	if len(faces) == 0 {
		return ""
	}
	width := faceSize * float64(len(faces))
	height := faceSize + labelSpace

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, c.Background))

	for i, f := range faces {
		cx := faceSize*float64(i) + faceSize/2
		cy := faceSize / 2
		sb.WriteString(fmt.Sprintf(`<g>
<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="3"/>
`, cx, cy, faceRadius, c.Dial))
		for h := 0; h < 12; h++ {
			inner := faceRadius - 6
			if h%3 == 0 {
				inner = faceRadius - 12
			}
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" transform="rotate(%.1f %.1f %.1f)"/>
`, cx-inner, cy, cx-faceRadius, cy, c.Dial, float64(h)*30+zone.BaselineDegrees, cx, cy))
		}
		sb.WriteString(hand(cx, cy, faceRadius*0.5, 5, c.Hands, f.Angles.Hour))
		sb.WriteString(hand(cx, cy, faceRadius*0.78, 3, c.Hands, f.Angles.Minute))
		sb.WriteString(hand(cx, cy, faceRadius*0.9, 1.5, c.Second, f.Angles.Second))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
</g>
`, cx, cy, c.Second, cx, faceSize+labelSpace/2, c.Label, html.EscapeString(f.Name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func hand(cx, cy, length, width float64, color string, deg float64) string {
	return fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-linecap="round" transform="rotate(%.1f %.1f %.1f)"/>
`, cx, cy, cx-length, cy, color, width, deg, cx, cy)
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, c Colors) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, c.Background, c.Hands))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
