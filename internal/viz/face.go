package viz

import (
	"github.com/san-kum/tzclock/internal/zone"
)

const (
	faceCols = 14
	faceRows = 7
)

// hand lengths as a fraction of the face radius
const (
	hourHand   = 0.5
	minuteHand = 0.78
	secondHand = 0.9
)

// DrawFace renders an analog clock with the given hand rotations.
func DrawFace(a zone.Angles) *Canvas {
	c := NewCanvas(faceCols, faceRows)
	drawFaceAt(c, 0, a)
	return c
}

// DrawFaces renders one face per entry, left to right, with a blank column
// between faces.
func DrawFaces(faces []zone.Angles) *Canvas {
	if len(faces) == 0 {
		return NewCanvas(0, faceRows)
	}
	c := NewCanvas(len(faces)*(faceCols+1)-1, faceRows)
	for i, a := range faces {
		drawFaceAt(c, i*(faceCols+1)*2, a)
	}
	return c
}

func drawFaceAt(c *Canvas, ox int, a zone.Angles) {
	w, h := faceCols*2, faceRows*4
	cx, cy := ox+w/2-1, h/2-1
	r := min(w/2-1, cy)

	c.DrawCircle(cx, cy, r)
	for i := 0; i < 12; i += 3 {
		// Quarter-hour marks just inside the rim.
		x, y := rayEnd(cx, cy, float64(r-2), float64(i)*30+zone.BaselineDegrees)
		c.Set(x, y)
	}

	rf := float64(r)
	c.DrawRay(cx, cy, rf*hourHand, a.Hour)
	c.DrawRay(cx, cy, rf*minuteHand, a.Minute)
	c.DrawRay(cx, cy, rf*secondHand, a.Second)
}
