// Package catalog loads the cultivar reference set from vendor CSV files.
// Headers are matched through alias normalization because the spreadsheets
// come from different seed merchants.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"beetguru/entities"
)

type Row struct {
	CropType    string
	Name        string
	DryMatter   string
	Yield       string
	GrowingTime string
	Description string
	IsPGG       bool
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// LoadCSV reads cultivar rows. Required columns: CropType, Cultivar,
// DryMatter. Yield/growing time/description are optional.
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCrop := findAny("CropType", "crop", "crop_type")
	cName := findAny("Cultivar", "name", "variety", "cultivar_name")
	cDM := findAny("DryMatter", "dm", "dry_matter", "drymatterrange")
	cYield := findAny("Yield", "yield_range", "yieldtdmha")
	cGrow := findAny("GrowingTime", "growing_time", "maturity", "weeks")
	cDesc := findAny("Description", "notes", "remark")
	cPGG := findAny("IsPGG", "pgg", "pgg_cultivar")

	if cCrop == -1 || cName == -1 || cDM == -1 {
		return nil, fmt.Errorf("cultivar CSV missing required columns, found headers: %v", head)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue
		}
		rows = append(rows, Row{
			CropType:    get(cCrop),
			Name:        name,
			DryMatter:   get(cDM),
			Yield:       get(cYield),
			GrowingTime: get(cGrow),
			Description: get(cDesc),
			IsPGG:       strings.EqualFold(get(cPGG), "true") || get(cPGG) == "1",
		})
	}
	if len(rows) == 0 {
		return nil, errors.New("no cultivar rows loaded")
	}
	return rows, nil
}

type store interface {
	FindCropTypeByName(name string) (*entities.CropType, error)
	CreateCropType(ct *entities.CropType) error
	BulkInsert([]entities.Cultivar) error
	Count() (int64, error)
}

// Import writes CSV rows into the store, creating crop types on demand.
// A non-empty store is left alone.
func Import(s store, rows []Row) (int, error) {
	if n, err := s.Count(); err != nil || n > 0 {
		return 0, err
	}
	byType := map[string]uint{}
	var batch []entities.Cultivar
	for _, row := range rows {
		id, ok := byType[row.CropType]
		if !ok {
			ct, err := s.FindCropTypeByName(row.CropType)
			if err != nil {
				ct = &entities.CropType{Name: row.CropType}
				if err := s.CreateCropType(ct); err != nil {
					return 0, err
				}
			}
			id = ct.CropTypeID
			byType[row.CropType] = id
		}
		batch = append(batch, entities.Cultivar{
			CropTypeID:  id,
			Name:        row.Name,
			DryMatter:   row.DryMatter,
			Yield:       row.Yield,
			GrowingTime: row.GrowingTime,
			Description: row.Description,
			IsPGG:       row.IsPGG,
		})
	}
	if len(batch) == 0 {
		return 0, nil
	}
	return len(batch), s.BulkInsert(batch)
}
