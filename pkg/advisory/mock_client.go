// pkg/advisory/mock_client.go

package advisory

import (
	"fmt"

	"beetguru/entities"
	"beetguru/pkg/assessment/yield"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) SummarizeAssessment(a *entities.Assessment, loc *entities.Location, d yield.Display) string {
	water := "dryland"
	if a.WaterType == entities.WaterTypeIrrigated {
		water = "irrigated"
	}
	return fmt.Sprintf(
		"**Assessment summary**\n\n- Paddock: %s, %.1f ha (%s)\n- Estimated yield: %s\n- Total crop: %s\n- Feeding capacity: %s for the recorded herd\n- Transition stock onto the crop gradually over 7-10 days and monitor dry matter against the %s target.",
		loc.Name, loc.AreaHa, water, d.Yield, d.TotalYield, d.FeedingDays, d.DryMatter,
	)
}
