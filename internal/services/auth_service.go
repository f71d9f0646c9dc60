package services

import (
	"encoding/json"
	"strings"
	"time"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/auth"
	"fixmate_backend/internal/email"
	"fixmate_backend/internal/logger"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/repositories"
	"fixmate_backend/internal/services/dto"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	maxLoginAttempts = 5
	lockDuration     = 15 * time.Minute
	resetTokenTTL    = 1 * time.Hour
	verifyTokenTTL   = 24 * time.Hour
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResult, error)
	Login(req *dto.LoginRequest) (*dto.AuthResult, error)
	VerifyEmail(token string) error
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// NormalizeEmail lowercases and trims an address; all lookups and stores go
// through this so the unique index is case-insensitive in effect.
func NormalizeEmail(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.AuthResult, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleCustomer
	}
	switch role {
	case models.UserRoleCustomer, models.UserRoleProvider, models.UserRoleAdmin:
	default:
		return nil, appErrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	verifyToken := generateRandomToken()
	verifyExp := time.Now().Add(verifyTokenTTL)

	user := &models.User{
		Email:            NormalizeEmail(req.Email),
		PasswordHash:     hash,
		Role:             role,
		FullName:         strings.TrimSpace(req.FullName),
		Phone:            strings.TrimSpace(req.Phone),
		IsActive:         true,
		EmailVerifyToken: verifyToken,
		EmailVerifyExp:   &verifyExp,
	}
	if user.FullName == "" {
		return nil, appErrors.ValidationMessage("Full name is required")
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	if role == models.UserRoleProvider {
		profile := buildProviderProfile(user.ID, req.ProviderDetails)
		if err := s.userRepo.CreateProviderProfile(profile); err != nil {
			return nil, appErrors.InternalError(err)
		}
		user.ProviderProfile = profile
	}

	s.sendVerificationEmail(user.Email, verifyToken)

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResult{Token: token, User: user}, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	now := time.Now()
	if user.Locked(now) {
		return nil, appErrors.ErrAccountLocked
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		user.LoginAttempts++
		if user.LoginAttempts >= maxLoginAttempts {
			lockUntil := now.Add(lockDuration)
			user.LockUntil = &lockUntil
			user.LoginAttempts = 0
		}
		if updErr := s.userRepo.Update(user); updErr != nil {
			logger.Error("failed to record login attempt", "error", updErr)
		}
		return nil, appErrors.ErrInvalidCredentials
	}

	if !user.IsActive || user.IsSuspended {
		return nil, appErrors.ErrInvalidCredentials
	}

	if user.LoginAttempts != 0 || user.LockUntil != nil {
		user.LoginAttempts = 0
		user.LockUntil = nil
		if updErr := s.userRepo.Update(user); updErr != nil {
			logger.Error("failed to reset login attempts", "error", updErr)
		}
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResult{Token: token, User: user}, nil
}

func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerifyToken(token)
	if err != nil {
		return appErrors.ErrInvalidToken
	}
	if user.EmailVerifyExp != nil && time.Now().After(*user.EmailVerifyExp) {
		return appErrors.ErrInvalidToken
	}

	user.EmailVerified = true
	user.EmailVerifyToken = ""
	user.EmailVerifyExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset never reveals whether the address exists.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(emailAddr))
	if err != nil {
		return nil
	}

	resetToken := generateRandomToken()
	resetExp := time.Now().Add(resetTokenTTL)
	user.ResetToken = resetToken
	user.ResetTokenExp = &resetExp

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return appErrors.ErrInvalidToken
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return appErrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	user.LoginAttempts = 0
	user.LockUntil = nil

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return appErrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// buildProviderProfile copies only the signup whitelist; verification fields
// always start at their defaults regardless of input.
func buildProviderProfile(userID string, details *dto.ProviderDetailsInput) *models.ProviderProfile {
	profile := &models.ProviderProfile{
		UserID:             userID,
		Availability:       models.AvailabilityOffline,
		VerificationStatus: models.VerificationIncomplete,
	}
	if details == nil {
		return profile
	}

	profile.Headline = details.Headline
	profile.WorkDescription = details.WorkDescription
	profile.HourlyRate = details.HourlyRate
	profile.ExperienceYears = details.ExperienceYears

	if len(details.Skills) > 0 {
		skills := make([]models.Skill, 0, len(details.Skills))
		for _, in := range details.Skills {
			skills = append(skills, models.Skill{Name: in.Name, Proficiency: in.Proficiency, Years: in.Years})
		}
		if raw, err := json.Marshal(skills); err == nil {
			profile.Skills = datatypes.JSON(raw)
		}
	}

	return profile
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendVerification(to, token); err != nil {
			logger.Error("failed to send verification email", "error", err)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendPasswordReset(to, token); err != nil {
			logger.Error("failed to send password reset email", "error", err)
		}
	}()
}

func generateRandomToken() string {
	return uuid.NewString()
}
