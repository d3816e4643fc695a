// Package shell persists the per-user UI shell state: which screen is
// active and, for retailers, which customer is selected.
package shell

import "fmt"

// Screen is the closed set of navigable screens. Persisting an out-of-range
// value is rejected at parse time, so stored sessions always round-trip.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenAssessments
	ScreenNewAssessment
	ScreenReports
	ScreenLocations
	ScreenCustomers
	ScreenSettings
)

var screenNames = [...]string{
	ScreenHome:          "home",
	ScreenAssessments:   "assessments",
	ScreenNewAssessment: "new-assessment",
	ScreenReports:       "reports",
	ScreenLocations:     "locations",
	ScreenCustomers:     "customers",
	ScreenSettings:      "settings",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "home"
	}
	return screenNames[s]
}

func ParseScreen(name string) (Screen, error) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), nil
		}
	}
	return ScreenHome, fmt.Errorf("unknown screen %q", name)
}
