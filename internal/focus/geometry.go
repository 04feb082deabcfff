package focus

import "errors"

// ErrMeasurementUnavailable is returned when a bound needed for the
// highlight has not been laid out yet.
var ErrMeasurementUnavailable = errors.New("focus: measurement unavailable")

// Rect is an absolute rectangle in the host's coordinate space.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Translate returns r shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// HighlightBox is the frame rectangle relative to the container's origin.
type HighlightBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsZero reports whether b is the unmeasured box.
func (b HighlightBox) IsZero() bool {
	return b == HighlightBox{}
}

// Lerp interpolates between b and to; t is clamped to [0, 1].
func (b HighlightBox) Lerp(to HighlightBox, t float64) HighlightBox {
	switch {
	case t <= 0:
		return b
	case t >= 1:
		return to
	}
	mix := func(from, to float64) float64 { return from + (to-from)*t }
	return HighlightBox{
		X:      mix(b.X, to.X),
		Y:      mix(b.Y, to.Y),
		Width:  mix(b.Width, to.Width),
		Height: mix(b.Height, to.Height),
	}
}

// MeasureHighlight returns the word's bounds relative to the container.
// A nil argument means the element is not laid out yet.
func MeasureHighlight(word, container *Rect) (HighlightBox, error) {
	if word == nil || container == nil {
		return HighlightBox{}, ErrMeasurementUnavailable
	}
	return HighlightBox{
		X:      word.Left - container.Left,
		Y:      word.Top - container.Top,
		Width:  word.Width,
		Height: word.Height,
	}, nil
}

// MeasureHighlight is the method form of the package function.
func (a *Animator) MeasureHighlight(word, container *Rect) (HighlightBox, error) {
	return MeasureHighlight(word, container)
}

// Tracker keeps the latest highlight box on behalf of a host. A failed
// measurement leaves the previous box in place so the frame never snaps back
// to the origin.
type Tracker struct {
	box      HighlightBox
	measured bool
}

// Track measures and stores the box. It reports whether the box was updated.
func (t *Tracker) Track(word, container *Rect) bool {
	box, err := MeasureHighlight(word, container)
	if err != nil {
		return false
	}
	t.box = box
	t.measured = true
	return true
}

// Box returns the last measured box, or the zero box.
func (t *Tracker) Box() HighlightBox {
	return t.box
}

// Measured reports whether any measurement has succeeded.
func (t *Tracker) Measured() bool {
	return t.measured
}
