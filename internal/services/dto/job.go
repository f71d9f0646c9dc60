package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"fixmate_backend/internal/models"
)

// Number accepts both JSON numbers and numeric strings: legacy clients send
// budgets like "150".
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func (n Number) Float() float64 { return float64(n) }

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=2000"`
	Category    string `json:"category" binding:"required,is-job-category"`

	Address string `json:"address" binding:"required"`
	City    string `json:"city"`

	Budget      Number `json:"budget" binding:"required"`
	PaymentType string `json:"paymentType" binding:"omitempty,is-payment-type"`

	EstimatedDuration *Number `json:"estimatedDuration"`
	DurationUnit      string  `json:"durationUnit" binding:"omitempty,is-duration-unit"`

	Urgency       string     `json:"urgency" binding:"omitempty,is-urgency"`
	PreferredDate *time.Time `json:"preferredDate"`
}

// UpdateJobRequest applies only whitelisted fields; location and duration are
// reconstructed from the flat fields when either half is present.
type UpdateJobRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Category    *string `json:"category" binding:"omitempty,is-job-category"`

	Address *string `json:"address"`
	City    *string `json:"city"`

	Budget *Number `json:"budget"`

	EstimatedDuration *Number `json:"estimatedDuration"`
	DurationUnit      *string `json:"durationUnit" binding:"omitempty,is-duration-unit"`

	Urgency       *string    `json:"urgency" binding:"omitempty,is-urgency"`
	PreferredDate *time.Time `json:"preferredDate"`
}

type ApplyRequest struct {
	ProposedPrice Number `json:"proposedPrice" binding:"required"`
	Message       string `json:"message" binding:"omitempty,max=1000"`
}

type AssignRequest struct {
	WorkerID string `json:"workerId" binding:"required"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

type VerifyProviderRequest struct {
	Action          string `json:"action" binding:"required,oneof=approve reject"`
	RejectionReason string `json:"rejectionReason"`
}

// UserSummary is the name/email identity summary attached to job listings.
type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// JobResponse is the wire view of a job with its sub-records expanded.
type JobResponse struct {
	ID          string             `json:"id"`
	Client      string             `json:"client"`
	ClientInfo  *UserSummary       `json:"clientInfo,omitempty"`
	Worker      *string            `json:"assignedWorker,omitempty"`
	WorkerInfo  *UserSummary       `json:"assignedWorkerInfo,omitempty"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    models.JobCategory `json:"category"`
	Location    models.Location    `json:"location"`

	Budget        float64                   `json:"budget"`
	PaymentType   models.PaymentType        `json:"paymentType"`
	PreferredDate *time.Time                `json:"preferredDate,omitempty"`
	Urgency       models.Urgency            `json:"urgency"`
	Duration      *models.EstimatedDuration `json:"estimatedDuration,omitempty"`

	Status   models.JobStatus `json:"status"`
	IsActive bool             `json:"isActive"`
	Escrow   models.Escrow    `json:"escrow"`
	Review   *models.Review   `json:"review,omitempty"`

	Applications []models.JobApplication `json:"applications,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewJobResponse builds the wire view from a loaded job.
func NewJobResponse(job *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:            job.ID,
		Client:        job.ClientID,
		Worker:        job.WorkerID,
		Title:         job.Title,
		Description:   job.Description,
		Category:      job.Category,
		Location:      job.Location,
		Budget:        job.Budget,
		PaymentType:   job.PaymentType,
		PreferredDate: job.PreferredDate,
		Urgency:       job.Urgency,
		Duration:      job.EstimatedDuration(),
		Status:        job.Status,
		IsActive:      job.IsActive,
		Escrow:        job.Escrow(),
		Review:        job.Review(),
		Applications:  job.Applications,
		CreatedAt:     job.CreatedAt,
		UpdatedAt:     job.UpdatedAt,
	}
	if job.Client != nil {
		resp.ClientInfo = &UserSummary{ID: job.Client.ID, FullName: job.Client.FullName, Email: job.Client.Email}
	}
	if job.Worker != nil {
		resp.WorkerInfo = &UserSummary{ID: job.Worker.ID, FullName: job.Worker.FullName, Email: job.Worker.Email}
	}
	return resp
}

// NewJobResponses maps a listing.
func NewJobResponses(jobs []models.Job) []*JobResponse {
	out := make([]*JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

var _ json.Unmarshaler = (*Number)(nil)
