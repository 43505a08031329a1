package app_test

import (
	"github.com/san-kum/tzclock/internal/app"
	"github.com/san-kum/tzclock/internal/zone"
)

type timerFrame struct {
	text, color string
}

// recorder is a Renderer that remembers every call.
type recorder struct {
	created    []string
	destroyed  []string
	digital    map[string]string
	analog     map[string]zone.Angles
	modes      []app.Mode
	timer      []timerFrame
	addEnabled bool
}

func newRecorder() *recorder {
	return &recorder{digital: map[string]string{}, analog: map[string]zone.Angles{}}
}

func (r *recorder) CreateSlot(id, name string) { r.created = append(r.created, id) }
func (r *recorder) DestroySlot(id string) { r.destroyed = append(r.destroyed, id) }
func (r *recorder) UpdateDigital(id, text string) { r.digital[id] = text }
func (r *recorder) UpdateAnalog(id string, a zone.Angles) { r.analog[id] = a }
func (r *recorder) ShowMode(m app.Mode) { r.modes = append(r.modes, m) }
func (r *recorder) UpdateTimer(text, color string) { r.timer = append(r.timer, timerFrame{text, color}) }
func (r *recorder) SetAddEnabled(enabled bool) { r.addEnabled = enabled }
func (r *recorder) lastTimer() timerFrame { return r.timer[len(r.timer)-1] }
