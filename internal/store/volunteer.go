package store

import (
	"context"
	"fmt"
	"time"

	"foodrescue/internal/utils"
	"foodrescue/pkg/types"

)

const (
	volunteerTableName    = "foodrescue.volunteers"
	availabilityTableName = "foodrescue.volunteer_availability"
	taskTableName         = "foodrescue.volunteer_tasks"
)

var (
	availabilityColumns = utils.StructTagValues(types.VolunteerAvailability{})
	taskColumns         = utils.StructTagValues(types.VolunteerTask{})
)

type VolunteerRepository struct {
	db DB
}

func NewVolunteerRepository(db DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Create inserts the volunteer profile plus one availability row per
// day and one task row per preferred task type, all in one transaction.
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *types.Volunteer, days []string, tasks []string) error {
	volunteer.CreatedAt = time.Now()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin volunteer create tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	volunteerQuery, volunteerArgs, err := psql().
		Insert(volunteerTableName).
		SetMap(utils.StructToMapExcept(volunteer, "volunteer_id")).
		Suffix("RETURNING volunteer_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate volunteer insert: %w", err)
	}

	err = tx.QueryRow(ctx, volunteerQuery, volunteerArgs...).Scan(&volunteer.ID)
	if err != nil {
		return fmt.Errorf("failed to insert volunteer: %w", err)
	}

	if len(days) > 0 {
		builder := psql().Insert(availabilityTableName).Columns(availabilityColumns...)
		for _, day := range days {
			builder = builder.Values(volunteer.ID, day)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate availability insert: %w", err)
		}

		_, err = tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to insert availability: %w", err)
		}
	}

	if len(tasks) > 0 {
		builder := psql().Insert(taskTableName).Columns(taskColumns...)
		for _, task := range tasks {
			builder = builder.Values(volunteer.ID, task)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate task insert: %w", err)
		}

		_, err = tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to insert preferred tasks: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit volunteer create tx: %w", err)
	}

	return nil
}
