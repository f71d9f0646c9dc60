package services

import (
	"fmt"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/repositories"
)

const defaultRejectionReason = "Submitted details did not meet the verification requirements"

// DecisionResult is the admin decide response body.
type DecisionResult struct {
	ID                 string                    `json:"id"`
	VerificationStatus models.VerificationStatus `json:"verificationStatus"`
}

// VerificationService is the admin half of the provider verification
// workflow; the self-service half lives in UserService.SaveOnboarding.
type VerificationService interface {
	ListPending() ([]models.User, error)
	Decide(userID, action, rejectionReason string) (*DecisionResult, error)
}

type VerificationServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewVerificationService(userRepo repositories.UserRepository) VerificationService {
	return &VerificationServiceImpl{userRepo: userRepo}
}

func (s *VerificationServiceImpl) ListPending() ([]models.User, error) {
	users, err := s.userRepo.FindPendingProviders()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return users, nil
}

// Decide approves or rejects a pending provider. Only pending submissions can
// be decided; anything else is a validation failure that leaves the record
// untouched.
func (s *VerificationServiceImpl) Decide(userID, action, rejectionReason string) (*DecisionResult, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if user.Role != models.UserRoleProvider || user.ProviderProfile == nil {
		return nil, appErrors.ValidationMessage("User is not a provider")
	}

	profile := user.ProviderProfile
	if profile.VerificationStatus != models.VerificationPending {
		return nil, appErrors.ValidationMessage(fmt.Sprintf(
			"Cannot %s a provider with status: %s", action, profile.VerificationStatus,
		))
	}

	switch action {
	case "approve":
		profile.VerificationStatus = models.VerificationApproved
		profile.IsVerified = true
		profile.SubmittedAt = nil
		profile.RejectionReason = ""
	case "reject":
		profile.VerificationStatus = models.VerificationRejected
		profile.IsVerified = false
		if rejectionReason == "" {
			rejectionReason = defaultRejectionReason
		}
		profile.RejectionReason = rejectionReason
	default:
		return nil, appErrors.ValidationMessage("Action must be approve or reject")
	}

	if err := s.userRepo.UpdateProviderProfile(profile); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &DecisionResult{ID: user.ID, VerificationStatus: profile.VerificationStatus}, nil
}
