package models

type UserRole string
type JobStatus string
type JobCategory string
type PaymentType string
type Urgency string
type DurationUnit string
type Availability string
type VerificationStatus string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleProvider UserRole = "provider"
	UserRoleAdmin    UserRole = "admin"

	JobStatusOpen         JobStatus = "open"
	JobStatusAssigned     JobStatus = "assigned"
	JobStatusEscrowFunded JobStatus = "escrow_funded"
	JobStatusInProgress   JobStatus = "in_progress"
	JobStatusCompleted    JobStatus = "completed"
	JobStatusCancelled    JobStatus = "cancelled"

	PaymentTypeFixed  PaymentType = "fixed"
	PaymentTypeHourly PaymentType = "hourly"

	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"

	DurationUnitHours DurationUnit = "hours"
	DurationUnitDays  DurationUnit = "days"

	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityOffline   Availability = "offline"

	VerificationIncomplete VerificationStatus = "incomplete"
	VerificationPending    VerificationStatus = "pending"
	VerificationApproved   VerificationStatus = "approved"
	VerificationRejected   VerificationStatus = "rejected"
)

// JobCategories lists the trade categories a job may be posted under.
var JobCategories = []JobCategory{
	"plumbing", "electrical", "carpentry", "painting", "roofing",
	"hvac", "landscaping", "cleaning", "handyman", "other",
}

func IsValidJobCategory(c JobCategory) bool {
	for _, v := range JobCategories {
		if v == c {
			return true
		}
	}
	return false
}

// jobTransitions is the job lifecycle. Completed and cancelled are terminal.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:         {JobStatusAssigned, JobStatusCancelled},
	JobStatusAssigned:     {JobStatusEscrowFunded, JobStatusInProgress, JobStatusCancelled},
	JobStatusEscrowFunded: {JobStatusInProgress, JobStatusCompleted, JobStatusCancelled},
	JobStatusInProgress:   {JobStatusCompleted, JobStatusCancelled},
	JobStatusCompleted:    {},
	JobStatusCancelled:    {},
}

// CanTransition reports whether a job may move from one status to another.
func CanTransition(from, to JobStatus) bool {
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalJobStatus reports whether the status admits no further mutation.
func IsTerminalJobStatus(s JobStatus) bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// verificationTransitions is the provider verification workflow:
// incomplete -> pending by self-service re-submission, pending decided by an
// admin, and a decided provider may withdraw back to incomplete for editing.
var verificationTransitions = map[VerificationStatus][]VerificationStatus{
	VerificationIncomplete: {VerificationPending},
	VerificationPending:    {VerificationApproved, VerificationRejected, VerificationIncomplete},
	VerificationApproved:   {VerificationIncomplete},
	VerificationRejected:   {VerificationIncomplete},
}

func CanTransitionVerification(from, to VerificationStatus) bool {
	for _, next := range verificationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
