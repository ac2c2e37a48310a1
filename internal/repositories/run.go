package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

var ErrRunNotFound = errors.New("run not found")

type RunRepository interface {
	Create(ctx context.Context, run *models.RunRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.RunRecord, error)
}

type runRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(ctx context.Context, run *models.RunRecord) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create run record: %w", err)
	}
	return nil
}

func (r *runRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.RunRecord, error) {
	var run models.RunRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to find run record: %w", err)
	}
	return &run, nil
}

// noopRunRepository is used when auditing is disabled.
type noopRunRepository struct{}

func NewNoopRunRepository() RunRepository {
	return noopRunRepository{}
}

func (noopRunRepository) Create(context.Context, *models.RunRecord) error {
	return nil
}

func (noopRunRepository) FindByID(context.Context, uuid.UUID) (*models.RunRecord, error) {
	return nil, ErrRunNotFound
}
