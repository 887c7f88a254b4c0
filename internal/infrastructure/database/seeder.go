package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vitalsync/internal/infrastructure/seed"
)

// Seed inserts the bundled catalog. Rows that already exist are left alone,
// so running it on every start is harmless.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations)

		steps := []struct {
			table string
			rows  any
		}{
			{"doctors", seed.Doctors()},
			{"doctor_profiles", seed.DoctorProfiles()},
			{"doctor_reviews", seed.DoctorReviews()},
			{"medicines", seed.Medicines()},
			{"emergency_centers", seed.EmergencyCenters()},
			{"user_locations", seed.Locations()},
		}
		for _, step := range steps {
			result := insert.Create(step.rows)
			if result.Error != nil {
				return fmt.Errorf("seed %s: %w", step.table, result.Error)
			}
			log.Debugf("Seeded %s: %d new rows", step.table, result.RowsAffected)
		}
		return nil
	})
}
