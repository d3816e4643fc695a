package wizard

import "fmt"

// Step is the closed set of wizard screens. Transitions are linear,
// Back/Next only.
type Step int

const (
	StepCropDetails Step = iota
	StepFieldSetup
	StepMeasurements
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepCropDetails:
		return "crop-details"
	case StepFieldSetup:
		return "field-setup"
	case StepMeasurements:
		return "measurements"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

func ParseStep(s string) (Step, error) {
	switch s {
	case "crop-details":
		return StepCropDetails, nil
	case "field-setup":
		return StepFieldSetup, nil
	case "measurements":
		return StepMeasurements, nil
	case "review":
		return StepReview, nil
	default:
		return 0, fmt.Errorf("unknown wizard step %q", s)
	}
}

// Next returns the following step; Review is terminal.
func (s Step) Next() (Step, bool) {
	switch s {
	case StepCropDetails:
		return StepFieldSetup, true
	case StepFieldSetup:
		return StepMeasurements, true
	case StepMeasurements:
		return StepReview, true
	default:
		return s, false
	}
}

// Back returns the preceding step; CropDetails is the floor.
func (s Step) Back() Step {
	switch s {
	case StepFieldSetup:
		return StepCropDetails
	case StepMeasurements:
		return StepFieldSetup
	case StepReview:
		return StepMeasurements
	default:
		return StepCropDetails
	}
}
