package dto

import "fixmate_backend/internal/models"

// SignupRequest creates an account. ProviderDetails is honored only for
// role=provider and only its whitelisted fields are copied.
type SignupRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,is-user-role"`

	ProviderDetails *ProviderDetailsInput `json:"providerDetails"`
}

// ProviderDetailsInput is the signup-time provider whitelist. Verification
// fields are never read from input.
type ProviderDetailsInput struct {
	Headline        string       `json:"headline" binding:"omitempty,max=200"`
	WorkDescription string       `json:"workDescription" binding:"omitempty,max=2000"`
	Skills          []SkillInput `json:"skills" binding:"omitempty,dive"`
	HourlyRate      float64      `json:"hourlyRate" binding:"omitempty,gte=0"`
	ExperienceYears int          `json:"experienceYears" binding:"omitempty,gte=0"`
}

type SkillInput struct {
	Name        string `json:"name" binding:"required"`
	Proficiency int    `json:"proficiency" binding:"required,min=1,max=10"`
	Years       int    `json:"years" binding:"gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// AuthResult is what signup and login hand back to the handler: the session
// token plus the public user view.
type AuthResult struct {
	Token string
	User  *models.User
}
