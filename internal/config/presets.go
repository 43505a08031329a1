package config

import (
	"sort"
	"time"
)

// Preset is a named countdown duration.
type Preset struct {
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
}

// Duration returns the preset as a time.Duration.
func (p Preset) Duration() time.Duration {
	return time.Duration(p.Hours)*time.Hour + time.Duration(p.Minutes)*time.Minute + time.Duration(p.Seconds)*time.Second
}

var Presets = map[string]*Preset{
	"pomodoro":    {Minutes: 25},
	"short-break": {Minutes: 5},
	"long-break":  {Minutes: 15},
	"tea":         {Minutes: 3},
	"egg":         {Minutes: 9},
	"nap":         {Minutes: 20},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
