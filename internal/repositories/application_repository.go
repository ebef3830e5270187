package repositories

import (
	"context"
	"errors"

	"github.com/kamranshamim45/ai-job-portal/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	// Create persists the application. The unique index on
	// (applicant_id, job_id) reports a concurrent duplicate as
	// ErrApplicationAlreadyExists even when the prior existence check
	// raced.
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	FindByPair(ctx context.Context, applicantID, jobID string) (*models.Application, error)
	FindByApplicant(ctx context.Context, applicantID string) ([]models.Application, error)
	FindByRecruiter(ctx context.Context, recruiterID string) ([]models.Application, error)
	FindAll(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	CountAll(ctx context.Context) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByPair(ctx context.Context, applicantID, jobID string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		First(&app, "applicant_id = ? AND job_id = ?", applicantID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("applied_on DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByRecruiter(ctx context.Context, recruiterID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		Where("job_id IN (?)",
			r.db.Model(&models.Job{}).Select("id").Where("recruiter_id = ?", recruiterID)).
		Order("applied_on DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAll(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		Order("applied_on DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).Count(&count).Error
	return count, err
}
