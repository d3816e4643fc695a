package entities

import "time"

type CropType struct {
	CropTypeID uint   `gorm:"primaryKey" json:"crop_type_id"`
	Name       string `gorm:"uniqueIndex" json:"name"`
	CreatedAt  time.Time
}

// Cultivar is reference data: a crop variety with published dry-matter,
// yield and growing-time ranges. The range fields stay as display strings
// ("19-21%", "22-26 t DM/ha") the way the vendor catalogues publish them.
type Cultivar struct {
	CultivarID  uint   `gorm:"primaryKey" json:"cultivar_id"`
	CropTypeID  uint   `gorm:"index" json:"crop_type_id"`
	Name        string `json:"name"`
	DryMatter   string `json:"dry_matter"`
	Yield       string `json:"yield"`
	GrowingTime string `json:"growing_time"`
	Description string `json:"description,omitempty"`
	IsPGG       bool   `json:"is_pgg_cultivar"`
	SourceURL   string `json:"source_url,omitempty"`
	CreatedAt   time.Time
}
