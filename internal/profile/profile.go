// Package profile holds named detection-parameter presets: bundles of a
// cascade name plus scan parameters tuned for a particular detection
// target (face, eye, mouth).
package profile

import "github.com/AnyUserName/vjdetect/internal/detector"

// Profile bundles a cascade name with the scan parameters to run it with.
type Profile struct {
	Name           string
	Cascade        string
	InitialScale   float64
	ScaleFactor    float64
	StepSize       float64
	EdgesDensity   float64
	RegionsOverlap float64
}

// Params returns the detector.Params this profile drives a scan with.
func (p Profile) Params() detector.Params {
	return detector.Params{
		InitialScale:   p.InitialScale,
		ScaleFactor:    p.ScaleFactor,
		StepSize:       p.StepSize,
		EdgesDensity:   p.EdgesDensity,
		RegionsOverlap: p.RegionsOverlap,
	}
}

// Built-in profiles.
var profiles = map[string]Profile{
	"face-fast": {
		Name:           "face-fast",
		Cascade:        "face",
		InitialScale:   1.0,
		ScaleFactor:    1.5,
		StepSize:       2.0,
		EdgesDensity:   0.2,
		RegionsOverlap: 0.5,
	},
	"face-accurate": {
		Name:           "face-accurate",
		Cascade:        "face",
		InitialScale:   1.0,
		ScaleFactor:    1.1,
		StepSize:       1.0,
		EdgesDensity:   0.1,
		RegionsOverlap: 0.4,
	},
	"eye": {
		Name:           "eye",
		Cascade:        "eye",
		InitialScale:   1.0,
		ScaleFactor:    1.25,
		StepSize:       1.5,
		EdgesDensity:   0.2,
		RegionsOverlap: 0.5,
	},
	"mouth": {
		Name:           "mouth",
		Cascade:        "mouth",
		InitialScale:   1.0,
		ScaleFactor:    1.25,
		StepSize:       1.5,
		EdgesDensity:   0.2,
		RegionsOverlap: 0.5,
	},
}

// Get returns a profile by name. Falls back to face-fast if unknown — the
// same fallback shape as the teacher's image-encoding profile lookup,
// unlike cascadedata.Get, which hard-errors (see spec.md §7: profiles are
// tuning presets, not the argument-validated cascade identifier itself).
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["face-fast"]
	p.Name = name
	return p
}

// Names returns the registered preset names.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	return names
}
