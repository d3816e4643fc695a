// pkg/advisory/client.go

package advisory

import (
	"beetguru/entities"
	"beetguru/pkg/assessment/yield"
)

// Client writes the agronomist summary attached to advanced reports.
type Client interface {
	SummarizeAssessment(a *entities.Assessment, loc *entities.Location, d yield.Display) string
}
