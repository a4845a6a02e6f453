package repository

import (
	"context"
	"database/sql"

	"campus-recommender/core/database"
	"campus-recommender/core/logger"
	"campus-recommender/modules/profile/entity"

	"github.com/google/uuid"
)

// ProfileRepository handles student profile database operations
type ProfileRepository struct {
	DB database.Database
}

func NewProfileRepository(db database.Database) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// ProfileRepositoryInterface defines the repository contract
type ProfileRepositoryInterface interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error)
	GetSlotsByProfileID(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilitySlot, error)
	// ReplaceProfile upserts the profile row and swaps the full slot
	// set in one transaction; slots are never partially patched.
	ReplaceProfile(ctx context.Context, userID uuid.UUID, interestsCSV string, slots []entity.AvailabilitySlot) (*entity.StudentProfile, error)
}

func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error) {
	query := `
		SELECT id, user_id, interests, created_at, updated_at
		FROM student_profiles WHERE user_id = $1
	`

	var profile entity.StudentProfile
	err := r.DB.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetProfileByUserID", "error", err)
		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepository) GetSlotsByProfileID(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, profile_id, day_of_week, start_time, end_time, created_at, updated_at
		FROM availability_slots
		WHERE profile_id = $1
		ORDER BY day_of_week, start_time
	`

	var slots []entity.AvailabilitySlot
	err := r.DB.SelectContext(ctx, &slots, query, profileID)
	if err != nil {
		logger.Error("ProfileRepository:GetSlotsByProfileID", "error", err)
		return nil, err
	}

	return slots, nil
}

func (r *ProfileRepository) ReplaceProfile(ctx context.Context, userID uuid.UUID, interestsCSV string, slots []entity.AvailabilitySlot) (*entity.StudentProfile, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("ProfileRepository:ReplaceProfile:Begin", "error", err)
		return nil, err
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO student_profiles (user_id, interests)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET interests = $2, updated_at = NOW()
		RETURNING id, user_id, interests, created_at, updated_at
	`

	var profile entity.StudentProfile
	if err := tx.GetContext(ctx, &profile, upsert, userID, interestsCSV); err != nil {
		logger.Error("ProfileRepository:ReplaceProfile:Upsert", "error", err)
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM availability_slots WHERE profile_id = $1`, profile.ID); err != nil {
		logger.Error("ProfileRepository:ReplaceProfile:DeleteSlots", "error", err)
		return nil, err
	}

	insertSlot := `
		INSERT INTO availability_slots (profile_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4)
	`
	for _, slot := range slots {
		if _, err := tx.ExecContext(ctx, insertSlot, profile.ID, slot.DayOfWeek, slot.StartTime, slot.EndTime); err != nil {
			logger.Error("ProfileRepository:ReplaceProfile:InsertSlot", "error", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("ProfileRepository:ReplaceProfile:Commit", "error", err)
		return nil, err
	}

	return &profile, nil
}
