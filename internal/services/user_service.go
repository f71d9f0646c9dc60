package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/geocode"
	"fixmate_backend/internal/logger"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/repositories"
	"fixmate_backend/internal/services/dto"

	"gorm.io/datatypes"
)

type UserService interface {
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	ListProviders() ([]models.User, error)
	SaveOnboarding(userID string, req *dto.OnboardingRequest) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	geocoder geocode.Geocoder
}

func NewUserService(userRepo repositories.UserRepository, geocoder geocode.Geocoder) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		geocoder: geocoder,
	}
}

func (s *UserServiceImpl) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Address != nil {
		user.Location.Address = *req.Address
	}
	if req.City != nil {
		user.Location.City = *req.City
	}
	if req.Lat != nil {
		user.Location.Lat = *req.Lat
	}
	if req.Lng != nil {
		user.Location.Lng = *req.Lng
	}

	// Fill coordinates from the address when the client supplied none.
	if req.Address != nil && req.Lat == nil && req.Lng == nil {
		s.fillCoordinates(&user.Location)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) ListProviders() ([]models.User, error) {
	users, err := s.userRepo.FindProviders()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return users, nil
}

// SaveOnboarding merges the typed provider partial and drives the
// self-service half of the verification workflow: verificationStatus=pending
// re-submits, verificationStatus=incomplete withdraws for editing.
func (s *UserServiceImpl) SaveOnboarding(userID string, req *dto.OnboardingRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.UserRoleProvider {
		return nil, appErrors.ValidationMessage("Only provider accounts have onboarding details")
	}

	// Persist only after every check passes so a rejected request leaves
	// no half-built profile row.
	profile := user.ProviderProfile
	isNew := profile == nil
	if isNew {
		profile = &models.ProviderProfile{
			UserID:             user.ID,
			Availability:       models.AvailabilityOffline,
			VerificationStatus: models.VerificationIncomplete,
		}
	}

	s.mergeOnboarding(profile, req)

	if req.VerificationStatus != nil && models.VerificationStatus(*req.VerificationStatus) != profile.VerificationStatus {
		target := models.VerificationStatus(*req.VerificationStatus)
		if !models.CanTransitionVerification(profile.VerificationStatus, target) {
			return nil, appErrors.ValidationMessage(fmt.Sprintf(
				"Cannot change verification status from %s to %s",
				profile.VerificationStatus, target,
			))
		}
		switch target {
		case models.VerificationPending:
			now := time.Now()
			profile.VerificationStatus = models.VerificationPending
			profile.SubmittedAt = &now
		case models.VerificationIncomplete:
			profile.VerificationStatus = models.VerificationIncomplete
			profile.IsVerified = false
			profile.RejectionReason = ""
			profile.SubmittedAt = nil
		}
	}

	if isNew {
		if err := s.userRepo.CreateProviderProfile(profile); err != nil {
			return nil, appErrors.InternalError(err)
		}
		user.ProviderProfile = profile
	} else if err := s.userRepo.UpdateProviderProfile(profile); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) mergeOnboarding(profile *models.ProviderProfile, req *dto.OnboardingRequest) {
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.WorkDescription != nil {
		profile.WorkDescription = *req.WorkDescription
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.CalloutFee != nil {
		profile.CalloutFee = *req.CalloutFee
	}
	if req.TravelFeePerKm != nil {
		profile.TravelFeePerKm = *req.TravelFeePerKm
	}
	if req.FreeTravelKm != nil {
		profile.FreeTravelKm = *req.FreeTravelKm
	}
	if req.Availability != nil {
		profile.Availability = models.Availability(*req.Availability)
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}

	if req.Skills != nil {
		skills := make([]models.Skill, 0, len(req.Skills))
		for _, in := range req.Skills {
			skills = append(skills, models.Skill{Name: in.Name, Proficiency: in.Proficiency, Years: in.Years})
		}
		profile.Skills = marshalJSON(skills)
	}
	if req.Projects != nil {
		projects := make([]models.ProjectOffer, 0, len(req.Projects))
		for _, in := range req.Projects {
			projects = append(projects, models.ProjectOffer{Name: in.Name, Details: in.Details, Rate: in.Rate})
		}
		profile.Projects = marshalJSON(projects)
	}
	if req.Portfolio != nil {
		entries := make([]models.PortfolioEntry, 0, len(req.Portfolio))
		for _, in := range req.Portfolio {
			entries = append(entries, models.PortfolioEntry{Title: in.Title, Description: in.Description, Images: in.Images})
		}
		profile.Portfolio = marshalJSON(entries)
	}
	if req.ServiceAreas != nil {
		areas := make([]models.ServiceArea, 0, len(req.ServiceAreas))
		for _, in := range req.ServiceAreas {
			area := models.ServiceArea{Address: in.Address, RadiusKm: in.RadiusKm}
			if in.Lat != nil && in.Lng != nil {
				area.Lat, area.Lng = *in.Lat, *in.Lng
			} else if s.geocoder != nil {
				// Best effort: a failed lookup leaves the coordinates zero.
				if lat, lng, err := s.geocoder.Forward(context.Background(), in.Address); err == nil {
					area.Lat, area.Lng = lat, lng
				} else {
					logger.Warn("geocoding service area failed", "address", in.Address, "error", err)
				}
			}
			areas = append(areas, area)
		}
		profile.ServiceAreas = marshalJSON(areas)
	}
}

func (s *UserServiceImpl) fillCoordinates(loc *models.Location) {
	if s.geocoder == nil || loc.Address == "" {
		return
	}
	lat, lng, err := s.geocoder.Forward(context.Background(), loc.Address)
	if err != nil {
		logger.Warn("geocoding profile address failed", "address", loc.Address, "error", err)
		return
	}
	loc.Lat, loc.Lng = lat, lng
}

func marshalJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
