package handlers

import (
	"fixmate_backend/internal/ratelimit"
	"fixmate_backend/internal/services"
	"fixmate_backend/internal/storage"
	"fixmate_backend/internal/validator"
)

// Registry bundles the constructed handlers for route registration.
type Registry struct {
	Auth   *AuthHandler
	User   *UserHandler
	Job    *JobHandler
	Admin  *AdminHandler
	Upload *UploadHandler
}

func NewRegistry(
	v *validator.Validator,
	authService services.AuthService,
	userService services.UserService,
	jobService services.JobService,
	verificationService services.VerificationService,
	store storage.Storage,
	limiter *ratelimit.Limiter,
) *Registry {
	base := NewBaseHandler(v)
	return &Registry{
		Auth:   NewAuthHandler(base, authService, limiter),
		User:   NewUserHandler(base, userService),
		Job:    NewJobHandler(base, jobService),
		Admin:  NewAdminHandler(base, verificationService),
		Upload: NewUploadHandler(base, store),
	}
}
