// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"beetguru/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.CustomerRelationship{},
		&entities.Location{},
		&entities.CropType{},
		&entities.Cultivar{},
		&entities.Assessment{},
		&entities.SampleArea{},
		&entities.CropCount{},
		&entities.Report{},
		&entities.VerificationCode{},
		&entities.UISession{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	// Backfill must run AFTER AutoMigrate so the assessment_id column exists
	// on databases created before the draft pointer was added.
	if err := migrateBackfillDraftPointers(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return db
}

// migrateBackfillDraftPointers repairs locations whose draft pointer is out of
// step with the assessments table: a location with a live draft assessment must
// carry that assessment's id, and a pointer to a completed or deleted
// assessment must be cleared. Older databases predate the pointer entirely.
func migrateBackfillDraftPointers(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='assessments'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// point each location at its newest draft
		if err := tx.Exec(`
UPDATE locations SET assessment_id = (
    SELECT a.assessment_id FROM assessments a
    WHERE a.location_id = locations.location_id AND a.status = 'draft'
    ORDER BY a.assessment_id DESC LIMIT 1
)
WHERE EXISTS (
    SELECT 1 FROM assessments a
    WHERE a.location_id = locations.location_id AND a.status = 'draft'
)`).Error; err != nil {
			return err
		}
		// clear stale pointers
		if err := tx.Exec(`
UPDATE locations SET assessment_id = NULL
WHERE assessment_id IS NOT NULL AND assessment_id NOT IN (
    SELECT assessment_id FROM assessments WHERE status = 'draft'
)`).Error; err != nil {
			return err
		}
		// status mirrors the pointer
		if err := tx.Exec(`UPDATE locations SET status = 'draft' WHERE assessment_id IS NOT NULL`).Error; err != nil {
			return err
		}
		return tx.Exec(`UPDATE locations SET status = 'not-started' WHERE assessment_id IS NULL`).Error
	})
}
