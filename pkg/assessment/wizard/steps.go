package wizard

import (
	"strconv"
	"time"

	"beetguru/entities"
	"beetguru/pkg/form"
	"beetguru/pkg/keypad"
)

const dateLayout = "2006-01-02"

// ValidateCropDetails is the crop-details step validator. Selecting the
// special "other" cultivar makes the free-text cultivar name required.
func ValidateCropDetails(v map[string]string) map[string]string {
	errs := map[string]string{}
	if v["crop_type_id"] == "" || v["crop_type_id"] == "0" {
		errs["crop_type_id"] = "Crop type is required"
	}
	if v["cultivar_id"] == "" {
		errs["cultivar_id"] = "Cultivar is required"
	} else if v["cultivar_id"] == "other" && v["custom_cultivar_name"] == "" {
		errs["custom_cultivar_name"] = "Cultivar name is required"
	}
	switch v["water_type"] {
	case entities.WaterTypeIrrigated, entities.WaterTypeDryland:
	default:
		errs["water_type"] = "Water type is required"
	}
	if _, err := time.Parse(dateLayout, v["sowing_date"]); err != nil {
		errs["sowing_date"] = "Sowing date is required"
	}
	if _, err := time.Parse(dateLayout, v["assessment_date"]); err != nil {
		errs["assessment_date"] = "Assessment date is required"
	}
	if cost, err := strconv.ParseFloat(v["estimated_growing_cost"], 64); err != nil || cost < 0 {
		errs["estimated_growing_cost"] = "Growing cost must be zero or more"
	}
	if v["stock_count"] != "" {
		if n, err := strconv.Atoi(v["stock_count"]); err != nil || n < 0 {
			errs["stock_count"] = "Stock count must be a whole number"
		}
	}
	return errs
}

// ValidateFieldSetup checks the row geometry and optional leaf/bulb dry
// matter percentages.
func ValidateFieldSetup(v map[string]string) map[string]string {
	errs := map[string]string{}
	if rs, err := strconv.ParseFloat(v["row_spacing"], 64); err != nil || rs <= 0.1 {
		errs["row_spacing"] = "Row spacing must be greater than 0.1 m"
	}
	if ml, err := strconv.ParseFloat(v["measurement_length"], 64); err != nil || ml <= 0.1 {
		errs["measurement_length"] = "Measurement length must be greater than 0.1 m"
	}
	switch v["value_type"] {
	case "estimate", "actual":
	default:
		errs["value_type"] = "Value type must be estimate or actual"
	}
	for _, k := range []string{"leaf_dry_matter_pct", "bulb_dry_matter_pct"} {
		if v[k] == "" {
			continue
		}
		if pct, err := strconv.ParseFloat(v[k], 64); err != nil || pct < 0 || pct > 100 {
			errs[k] = "Dry matter must be between 0 and 100"
		}
	}
	return errs
}

func (d Draft) cropDetailsValues() map[string]string {
	cultivar := ""
	if d.CultivarID != nil {
		cultivar = strconv.FormatUint(uint64(*d.CultivarID), 10)
	} else if d.CustomCultivarName != "" {
		cultivar = "other"
	}
	return map[string]string{
		"crop_type_id":           strconv.FormatUint(uint64(d.CropTypeID), 10),
		"cultivar_id":            cultivar,
		"custom_cultivar_name":   d.CustomCultivarName,
		"stock_type":             d.StockType,
		"stock_count":            strconv.Itoa(d.StockCount),
		"sowing_date":            d.SowingDate.Format(dateLayout),
		"assessment_date":        d.AssessmentDate.Format(dateLayout),
		"water_type":             d.WaterType,
		"estimated_growing_cost": strconv.FormatFloat(d.EstimatedGrowingCost, 'f', -1, 64),
	}
}

func (d Draft) fieldSetupValues() map[string]string {
	v := map[string]string{
		"row_spacing":        strconv.FormatFloat(d.RowSpacingM, 'f', -1, 64),
		"measurement_length": strconv.FormatFloat(d.MeasurementLengthM, 'f', -1, 64),
		"value_type":         d.ValueType,
		"leaf_dry_matter_pct": "",
		"bulb_dry_matter_pct": "",
	}
	if d.LeafDryMatterPct != nil {
		v["leaf_dry_matter_pct"] = strconv.FormatFloat(*d.LeafDryMatterPct, 'f', -1, 64)
	}
	if d.BulbDryMatterPct != nil {
		v["bulb_dry_matter_pct"] = strconv.FormatFloat(*d.BulbDryMatterPct, 'f', -1, 64)
	}
	return v
}

// ApplyCropDetails merges the submitted form fields into a new draft and
// advances to field setup. Validation failures return the untouched draft
// with the per-field error map.
func (d Draft) ApplyCropDetails(values map[string]string) (Draft, map[string]string) {
	f := form.New(d.cropDetailsValues(), ValidateCropDetails)
	for k, v := range values {
		f.HandleChange(k, v)
	}
	out := d
	_ = f.Submit(func(v map[string]string) error {
		ct, _ := strconv.ParseUint(v["crop_type_id"], 10, 64)
		out.CropTypeID = uint(ct)
		if v["cultivar_id"] == "other" {
			out.CultivarID = nil
			out.CustomCultivarName = v["custom_cultivar_name"]
		} else {
			id, _ := strconv.ParseUint(v["cultivar_id"], 10, 64)
			cid := uint(id)
			out.CultivarID = &cid
			out.CustomCultivarName = ""
		}
		out.StockType = v["stock_type"]
		out.StockCount, _ = strconv.Atoi(v["stock_count"])
		out.SowingDate, _ = time.Parse(dateLayout, v["sowing_date"])
		out.AssessmentDate, _ = time.Parse(dateLayout, v["assessment_date"])
		out.WaterType = v["water_type"]
		out.EstimatedGrowingCost, _ = strconv.ParseFloat(v["estimated_growing_cost"], 64)
		return nil
	})
	if len(f.Errors) > 0 {
		return d, f.Errors
	}
	next, _ := out.Advance()
	return next, nil
}

// ApplyFieldSetup merges the field-setup fields and advances to measurements.
func (d Draft) ApplyFieldSetup(values map[string]string) (Draft, map[string]string) {
	if d.Step != StepFieldSetup {
		d.Step = StepFieldSetup
	}
	f := form.New(d.fieldSetupValues(), ValidateFieldSetup)
	for k, v := range values {
		f.HandleChange(k, v)
	}
	out := d
	_ = f.Submit(func(v map[string]string) error {
		out.RowSpacingM, _ = strconv.ParseFloat(v["row_spacing"], 64)
		out.MeasurementLengthM, _ = strconv.ParseFloat(v["measurement_length"], 64)
		out.ValueType = v["value_type"]
		out.LeafDryMatterPct = optFloat(v["leaf_dry_matter_pct"])
		out.BulbDryMatterPct = optFloat(v["bulb_dry_matter_pct"])
		return nil
	})
	if len(f.Errors) > 0 {
		return d, f.Errors
	}
	next, _ := out.Advance()
	return next, nil
}

// CropCountInput carries one measurements-step row as the keypad produced
// it: digit-accumulated strings, validated before parsing.
type CropCountInput struct {
	Leaf   string `json:"leaf"`
	Bulb   string `json:"bulb"`
	Plants string `json:"plants"`
}

type SampleAreaInput struct {
	SampleLength string `json:"sample_length"`
	Weight       string `json:"weight"`
	DryMatter    string `json:"dry_matter"`
	Notes        string `json:"notes"`
}

// ApplyMeasurements replaces the sample rows and advances to review. Each
// numeric field must be a well-formed keypad value; rows may be partially
// filled, the yield calculation skips incomplete ones.
func (d Draft) ApplyMeasurements(counts []CropCountInput, samples []SampleAreaInput) (Draft, map[string]string) {
	errs := map[string]string{}
	out := d
	out.Step = StepMeasurements
	out.CropCounts = nil
	out.SampleAreas = nil

	for i, in := range counts {
		row := entities.CropCount{}
		if f, err := keypadFloat(in.Leaf); err != nil {
			errs[fieldKey("measurements", i, "leaf")] = "Leaf weight must be a number"
		} else {
			row.LeafKG = f
		}
		if f, err := keypadFloat(in.Bulb); err != nil {
			errs[fieldKey("measurements", i, "bulb")] = "Bulb weight must be a number"
		} else {
			row.BulbKG = f
		}
		if in.Plants != "" {
			if n, err := strconv.Atoi(in.Plants); err != nil || n < 0 {
				errs[fieldKey("measurements", i, "plants")] = "Plant count must be a whole number"
			} else {
				row.Plants = &n
			}
		}
		out.CropCounts = append(out.CropCounts, row)
	}
	for i, in := range samples {
		row := entities.SampleArea{Notes: in.Notes}
		if f, err := keypadFloat(in.SampleLength); err != nil {
			errs[fieldKey("sample_areas", i, "sample_length")] = "Sample length must be a number"
		} else {
			row.SampleLengthM = f
		}
		if f, err := keypadFloat(in.Weight); err != nil {
			errs[fieldKey("sample_areas", i, "weight")] = "Weight must be a number"
		} else {
			row.WeightKG = f
		}
		if f, err := keypadFloat(in.DryMatter); err != nil {
			errs[fieldKey("sample_areas", i, "dry_matter")] = "Dry matter must be a number"
		} else {
			row.DryMatterPct = f
		}
		out.SampleAreas = append(out.SampleAreas, row)
	}
	if len(errs) > 0 {
		return d, errs
	}
	next, _ := out.Advance()
	return next, nil
}

// keypadFloat accepts a keypad-accumulated value: empty means not entered,
// anything else must round-trip the keypad state machine.
func keypadFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	if _, err := keypad.New(s); err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func optFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func fieldKey(list string, i int, field string) string {
	return list + "." + strconv.Itoa(i) + "." + field
}
