package repositories

import (
	"errors"

	"fixmate_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindActive() ([]models.Job, error)
	FindByClient(clientID string) ([]models.Job, error)
	Update(job *models.Job) error

	CreateApplication(app *models.JobApplication) error
	HasApplication(jobID, workerID string) (bool, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Client").
		Preload("Worker").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindActive returns listable jobs newest first with client and worker
// attached for the identity summaries.
func (r *JobRepositoryImpl) FindActive() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("is_active = ?", true).
		Preload("Client").
		Preload("Worker").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByClient(clientID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("client_id = ?", clientID).
		Preload("Worker").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CreateApplication(app *models.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *JobRepositoryImpl) HasApplication(jobID, workerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND worker_id = ?", jobID, workerID).
		Count(&count).Error
	return count > 0, err
}
