package models

import "time"

// Escrow is the job's held-funds sub-record. Amount mirrors the budget at
// creation; ReleasedAt is set when the job completes.
type Escrow struct {
	Amount     float64    `json:"amount"`
	Funded     bool       `json:"funded"`
	ReleasedAt *time.Time `json:"releasedAt,omitempty"`
}

// EstimatedDuration is an optional value + unit pair on a job.
type EstimatedDuration struct {
	Value float64      `json:"value"`
	Unit  DurationUnit `json:"unit"`
}

// Review is attachable by the owning client after completion.
type Review struct {
	Rating  *int   `json:"rating,omitempty"` // 1..5
	Comment string `json:"comment,omitempty"`
}

type Job struct {
	BaseModel
	ClientID string  `gorm:"not null;index" json:"client"`
	WorkerID *string `gorm:"index" json:"assignedWorker,omitempty"`

	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"not null" json:"description"`
	Category    JobCategory `gorm:"type:varchar(30);not null" json:"category"`
	Location    Location    `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	Budget        float64     `gorm:"not null" json:"budget"`
	PaymentType   PaymentType `gorm:"type:varchar(10);default:'fixed'" json:"paymentType"`
	PreferredDate *time.Time  `json:"preferredDate,omitempty"`
	Urgency       Urgency     `gorm:"type:varchar(10);default:'medium'" json:"urgency"`

	DurationValue *float64     `json:"-"`
	DurationUnit  DurationUnit `gorm:"type:varchar(10)" json:"-"`

	Status   JobStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`
	IsActive bool      `gorm:"default:true;index" json:"isActive"`

	EscrowAmount     float64    `json:"-"`
	EscrowFunded     bool       `gorm:"default:false" json:"-"`
	EscrowReleasedAt *time.Time `json:"-"`

	ReviewRating  *int   `json:"-"`
	ReviewComment string `json:"-"`

	Applications []JobApplication `gorm:"foreignKey:JobID" json:"applications,omitempty"`

	Client *User `gorm:"foreignKey:ClientID" json:"-"`
	Worker *User `gorm:"foreignKey:WorkerID" json:"-"`
}

// Escrow returns the escrow sub-record in its wire shape.
func (j *Job) Escrow() Escrow {
	return Escrow{Amount: j.EscrowAmount, Funded: j.EscrowFunded, ReleasedAt: j.EscrowReleasedAt}
}

// EstimatedDuration returns the optional duration sub-record, nil when unset.
func (j *Job) EstimatedDuration() *EstimatedDuration {
	if j.DurationValue == nil {
		return nil
	}
	unit := j.DurationUnit
	if unit == "" {
		unit = DurationUnitHours
	}
	return &EstimatedDuration{Value: *j.DurationValue, Unit: unit}
}

// Review returns the attached review, nil when no rating was left.
func (j *Job) Review() *Review {
	if j.ReviewRating == nil {
		return nil
	}
	return &Review{Rating: j.ReviewRating, Comment: j.ReviewComment}
}

// JobApplication is one provider's bid on a job, ordered by CreatedAt.
type JobApplication struct {
	BaseModel
	JobID         string  `gorm:"not null;index" json:"-"`
	WorkerID      string  `gorm:"not null;index" json:"worker"`
	ProposedPrice float64 `json:"proposedPrice"`
	Message       string  `json:"message,omitempty"`
}
