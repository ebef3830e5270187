package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/kamranshamim45/ai-job-portal/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows the public job listing. Location is a case-insensitive
// substring match; Skills matches jobs whose required skills overlap the
// given set. Statuses limits visibility (empty means no restriction).
type JobFilter struct {
	Location string
	Skills   []string
	Statuses []models.JobStatus
	Page     int
	Limit    int
}

type JobCount struct {
	Job              models.Job
	ApplicationCount int64
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	UpdateStatus(ctx context.Context, id string, status models.JobStatus) error
	Find(ctx context.Context, filter JobFilter) ([]models.Job, int64, error)
	FindByRecruiter(ctx context.Context, recruiterID string) ([]JobCount, error)
	FindAll(ctx context.Context) ([]models.Job, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// DeleteCascade removes the job and every application referencing it.
	DeleteCascade(ctx context.Context, id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Preload("Recruiter").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.JobStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Find(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if len(filter.Skills) > 0 {
		trimmed := make([]string, 0, len(filter.Skills))
		for _, skill := range filter.Skills {
			if s := strings.TrimSpace(skill); s != "" {
				trimmed = append(trimmed, s)
			}
		}
		if len(trimmed) > 0 {
			query = query.Where("skills_required && ?", pq.StringArray(trimmed))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var jobs []models.Job
	err := query.Preload("Recruiter").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindByRecruiter(ctx context.Context, recruiterID string) ([]JobCount, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	counts := make([]JobCount, 0, len(jobs))
	for _, job := range jobs {
		var n int64
		if err := r.db.WithContext(ctx).Model(&models.Application{}).
			Where("job_id = ?", job.ID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		counts = append(counts, JobCount{Job: job, ApplicationCount: n})
	}
	return counts, nil
}

func (r *JobRepositoryImpl) FindAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Preload("Recruiter").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *JobRepositoryImpl) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
