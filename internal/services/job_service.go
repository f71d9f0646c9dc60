package services

import (
	"fmt"
	"strings"
	"time"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/repositories"
	"fixmate_backend/internal/services/dto"
)

type JobService interface {
	Create(clientID string, req *dto.CreateJobRequest) (*models.Job, error)
	ListAll() ([]models.Job, error)
	ListMine(clientID string) ([]models.Job, error)
	Update(jobID, callerID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Complete(jobID, callerID string) (*models.Job, error)
	Cancel(jobID, callerID string) (*models.Job, error)
	Assign(jobID, callerID, workerID string) (*models.Job, error)
	Fund(jobID, callerID string) (*models.Job, error)
	Start(jobID, callerID string) (*models.Job, error)
	Apply(jobID, workerID string, req *dto.ApplyRequest) (*models.Job, error)
	Review(jobID, callerID string, req *dto.ReviewRequest) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (s *JobServiceImpl) Create(clientID string, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := validateJobContent(req.Title, req.Description, req.Address); err != nil {
		return nil, err
	}

	budget := req.Budget.Float()
	if budget <= 0 {
		return nil, appErrors.ValidationMessage("Budget must be a positive number")
	}

	job := &models.Job{
		ClientID:    clientID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    models.JobCategory(req.Category),
		Location: models.Location{
			Address: strings.TrimSpace(req.Address),
			City:    strings.TrimSpace(req.City),
		},
		Budget:        budget,
		PaymentType:   models.PaymentTypeFixed,
		Urgency:       models.UrgencyMedium,
		PreferredDate: req.PreferredDate,
		Status:        models.JobStatusOpen,
		IsActive:      true,

		// Escrow mirrors the budget at creation and stays unfunded.
		EscrowAmount: budget,
		EscrowFunded: false,
	}

	if req.PaymentType != "" {
		job.PaymentType = models.PaymentType(req.PaymentType)
	}
	if req.Urgency != "" {
		job.Urgency = models.Urgency(req.Urgency)
	}
	if req.EstimatedDuration != nil {
		if err := applyDuration(job, req.EstimatedDuration.Float(), req.DurationUnit); err != nil {
			return nil, err
		}
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListAll() ([]models.Job, error) {
	jobs, err := s.jobRepo.FindActive()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return jobs, nil
}

// ListMine returns the caller's jobs. The owner is always the authenticated
// identity, never a substitute constant.
func (s *JobServiceImpl) ListMine(clientID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByClient(clientID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) Update(jobID, callerID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.loadOwned(jobID, callerID)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalJobStatus(job.Status) {
		return nil, appErrors.InvalidState(fmt.Sprintf("Cannot edit a %s job", job.Status))
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		job.Category = models.JobCategory(*req.Category)
	}
	if req.Budget != nil {
		job.Budget = req.Budget.Float()
	}
	if req.Urgency != nil {
		job.Urgency = models.Urgency(*req.Urgency)
	}
	if req.PreferredDate != nil {
		job.PreferredDate = req.PreferredDate
	}

	// Location and duration arrive flat; either half rebuilds the nested record.
	if req.Address != nil {
		job.Location.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		job.Location.City = strings.TrimSpace(*req.City)
	}
	if req.EstimatedDuration != nil || req.DurationUnit != nil {
		value := 0.0
		if job.DurationValue != nil {
			value = *job.DurationValue
		}
		if req.EstimatedDuration != nil {
			value = req.EstimatedDuration.Float()
		}
		unit := string(job.DurationUnit)
		if req.DurationUnit != nil {
			unit = *req.DurationUnit
		}
		if err := applyDuration(job, value, unit); err != nil {
			return nil, err
		}
	}

	// Same rules as create.
	if err := validateJobContent(job.Title, job.Description, job.Location.Address); err != nil {
		return nil, err
	}
	if job.Budget <= 0 {
		return nil, appErrors.ValidationMessage("Budget must be a positive number")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

// Complete releases escrow and closes the job. Valid only from in_progress or
// escrow_funded.
func (s *JobServiceImpl) Complete(jobID, callerID string) (*models.Job, error) {
	job, err := s.loadOwned(jobID, callerID)
	if err != nil {
		return nil, err
	}

	if job.Status != models.JobStatusInProgress && job.Status != models.JobStatusEscrowFunded {
		return nil, appErrors.InvalidState(fmt.Sprintf("Cannot complete a job with status: %s", job.Status))
	}

	now := time.Now()
	job.Status = models.JobStatusCompleted
	job.IsActive = false
	job.EscrowReleasedAt = &now

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

// Cancel is reachable from any non-terminal state and is itself terminal.
func (s *JobServiceImpl) Cancel(jobID, callerID string) (*models.Job, error) {
	job, err := s.loadOwned(jobID, callerID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(job.Status, models.JobStatusCancelled) {
		return nil, appErrors.InvalidState(fmt.Sprintf("Cannot cancel a job with status: %s", job.Status))
	}

	job.Status = models.JobStatusCancelled
	job.IsActive = false

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Assign(jobID, callerID, workerID string) (*models.Job, error) {
	job, err := s.loadOwned(jobID, callerID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(job.Status, models.JobStatusAssigned) {
		return nil, appErrors.InvalidState(fmt.Sprintf("Cannot assign a job with status: %s", job.Status))
	}

	worker, err := s.userRepo.FindByID(workerID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if worker.Role != models.UserRoleProvider {
		return nil, appErrors.ValidationMessage("Assigned worker must be a provider")
	}

	job.WorkerID = &worker.ID
	job.Status = models.JobStatusAssigned

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Fund(jobID, callerID string) (*models.Job, error) {
	job, err := s.loadOwned(jobID, callerID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(job.Status, models.JobStatusEscrowFunded) {
		return nil, appErrors.InvalidState(fmt.Sprintf("Cannot fund escrow for a job with status: %s", job.Status))
	}

	job.Status = models.JobStatusEscrowFunded
	job.EscrowFunded = true

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

// Start marks the work as underway. Funding escrow first is allowed but not
// required.
func (s *JobServiceImpl) Start(jobID, callerID string) (*models.Job, error) {
	job, err := s.loadOwned(jobID, callerID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(job.Status, models.JobStatusInProgress) {
		return nil, appErrors.InvalidState(fmt.Sprintf("Cannot start a job with status: %s", job.Status))
	}

	job.Status = models.JobStatusInProgress

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Apply(jobID, workerID string, req *dto.ApplyRequest) (*models.Job, error) {
	job, err := s.load(jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusOpen {
		return nil, appErrors.InvalidState(fmt.Sprintf("Cannot apply to a job with status: %s", job.Status))
	}
	if job.ClientID == workerID {
		return nil, appErrors.ValidationMessage("Cannot apply to your own job")
	}

	exists, err := s.jobRepo.HasApplication(jobID, workerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if exists {
		return nil, appErrors.ValidationMessage("You already applied to this job")
	}

	app := &models.JobApplication{
		JobID:         jobID,
		WorkerID:      workerID,
		ProposedPrice: req.ProposedPrice.Float(),
		Message:       req.Message,
	}
	if err := s.jobRepo.CreateApplication(app); err != nil {
		return nil, appErrors.InternalError(err)
	}

	job.Applications = append(job.Applications, *app)
	return job, nil
}

// Review attaches a rating after completion; a job can be reviewed once.
func (s *JobServiceImpl) Review(jobID, callerID string, req *dto.ReviewRequest) (*models.Job, error) {
	job, err := s.loadOwned(jobID, callerID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusCompleted {
		return nil, appErrors.InvalidState("Only completed jobs can be reviewed")
	}
	if job.ReviewRating != nil {
		return nil, appErrors.InvalidState("Job already has a review")
	}

	rating := req.Rating
	job.ReviewRating = &rating
	job.ReviewComment = req.Comment

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) load(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) loadOwned(jobID, callerID string) (*models.Job, error) {
	job, err := s.load(jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != callerID {
		return nil, appErrors.ErrForbidden
	}
	return job, nil
}

func validateJobContent(title, description, address string) error {
	details := map[string]string{}
	if strings.TrimSpace(title) == "" {
		details["title"] = "Title is required"
	}
	if strings.TrimSpace(description) == "" {
		details["description"] = "Description is required"
	}
	if strings.TrimSpace(address) == "" {
		details["address"] = "Address is required"
	}
	if len(details) > 0 {
		return appErrors.ValidationError(details)
	}
	return nil
}

func applyDuration(job *models.Job, value float64, unit string) error {
	if value <= 0 {
		return appErrors.ValidationMessage("Estimated duration must be a positive number")
	}
	u := models.DurationUnit(unit)
	if u == "" {
		u = models.DurationUnitHours
	}
	if u != models.DurationUnitHours && u != models.DurationUnitDays {
		return appErrors.ValidationMessage("Duration unit must be hours or days")
	}
	job.DurationValue = &value
	job.DurationUnit = u
	return nil
}
