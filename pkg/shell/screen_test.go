package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_RoundTrip(t *testing.T) {
	for _, s := range []Screen{
		ScreenHome, ScreenAssessments, ScreenNewAssessment,
		ScreenReports, ScreenLocations, ScreenCustomers, ScreenSettings,
	} {
		parsed, err := ParseScreen(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestParseScreen_RejectsUnknown(t *testing.T) {
	_, err := ParseScreen("dashboard")
	assert.Error(t, err)
}

func TestScreen_OutOfRangeFallsBackToHome(t *testing.T) {
	assert.Equal(t, "home", Screen(42).String())
	assert.Equal(t, "home", Screen(-1).String())
}
