// Package yield converts row-sample measurements into per-hectare dry-matter
// yield and feeding capacity. Pure arithmetic, no storage access.
package yield

import (
	"fmt"
	"math"
)

const (
	DefaultHerdSize    = 50
	DefaultIntakeKgDay = 8.0

	// NA is returned for every display output when no valid samples exist.
	NA = "N/A"
)

type Sample struct {
	SampleLengthM *float64
	WeightKG      *float64
	DryMatterPct  *float64
}

// Valid requires all three fields present and positive. A zero-length sample
// is treated as not entered, which also keeps the weight-per-meter division
// safe.
func (s Sample) Valid() bool {
	return s.SampleLengthM != nil && *s.SampleLengthM > 0 &&
		s.WeightKG != nil && *s.WeightKG > 0 &&
		s.DryMatterPct != nil && *s.DryMatterPct > 0
}

type Inputs struct {
	Samples     []Sample
	RowSpacingM float64
	FieldAreaHa float64
	HerdSize    int     // animals; DefaultHerdSize when zero
	IntakeKgDay float64 // kg DM per animal per day; DefaultIntakeKgDay when zero
}

type Result struct {
	Valid bool

	AvgDryMatterPct   float64
	AvgWeightPerMeter float64
	YieldTPerHa       float64
	TotalYieldT       float64
	FeedingDays       int
}

// Estimate runs the calculation over the valid samples. Raw floats are kept
// unrounded so callers can assert on them; rounding happens in Display.
func Estimate(in Inputs) Result {
	herd := in.HerdSize
	if herd <= 0 {
		herd = DefaultHerdSize
	}
	intake := in.IntakeKgDay
	if intake <= 0 {
		intake = DefaultIntakeKgDay
	}

	var sumDM, sumWPM float64
	valid := 0
	for _, s := range in.Samples {
		if !s.Valid() {
			continue
		}
		sumDM += *s.DryMatterPct
		sumWPM += *s.WeightKG / *s.SampleLengthM
		valid++
	}
	if valid == 0 || in.RowSpacingM <= 0 {
		return Result{}
	}

	avgDM := sumDM / float64(valid)
	avgWPM := sumWPM / float64(valid)

	// One linear meter of row stands for rowSpacing m2 of paddock, so a
	// hectare holds 10000/(rowSpacing*100) hundred-meter row strips.
	perHa := avgWPM * (10000 / (in.RowSpacingM * 100)) * (avgDM / 100)
	total := perHa * in.FieldAreaHa
	days := int(math.Floor(total * 1000 / (float64(herd) * intake)))

	return Result{
		Valid:             true,
		AvgDryMatterPct:   avgDM,
		AvgWeightPerMeter: avgWPM,
		YieldTPerHa:       perHa,
		TotalYieldT:       total,
		FeedingDays:       days,
	}
}

type Display struct {
	Yield       string `json:"yield"`
	TotalYield  string `json:"total_yield"`
	FeedingDays string `json:"feeding_days"`
	DryMatter   string `json:"dry_matter"`
}

// Display renders the result rounded to one decimal with unit suffixes, or
// the N/A sentinel throughout when the calculation had no valid samples.
func (r Result) Display() Display {
	if !r.Valid {
		return Display{Yield: NA, TotalYield: NA, FeedingDays: NA, DryMatter: NA}
	}
	return Display{
		Yield:       fmt.Sprintf("%.1f t/ha", r.YieldTPerHa),
		TotalYield:  fmt.Sprintf("%.1f tonnes", r.TotalYieldT),
		FeedingDays: fmt.Sprintf("%d days", r.FeedingDays),
		DryMatter:   fmt.Sprintf("%.1f%%", r.AvgDryMatterPct),
	}
}
