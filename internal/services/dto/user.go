package dto

// UpdateProfileRequest is a typed partial profile update; absent fields are
// left untouched.
type UpdateProfileRequest struct {
	FullName  *string  `json:"fullName" binding:"omitempty,min=1"`
	Phone     *string  `json:"phone"`
	AvatarURL *string  `json:"avatarUrl" binding:"omitempty,url"`
	Bio       *string  `json:"bio" binding:"omitempty,max=2000"`
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

// OnboardingRequest is the provider onboarding save: an explicit typed
// partial enumerating every permitted provider sub-field. Unknown fields are
// rejected at bind time. Setting verificationStatus to "pending" is the
// re-submission trigger; "incomplete" is the self-service withdraw trigger;
// any other value is invalid.
type OnboardingRequest struct {
	Headline        *string `json:"headline" binding:"omitempty,max=200"`
	WorkDescription *string `json:"workDescription" binding:"omitempty,max=2000"`

	Skills []SkillInput `json:"skills" binding:"omitempty,dive"`

	HourlyRate     *float64 `json:"hourlyRate" binding:"omitempty,gte=0"`
	CalloutFee     *float64 `json:"calloutFee" binding:"omitempty,gte=0"`
	TravelFeePerKm *float64 `json:"travelFeePerKm" binding:"omitempty,gte=0"`
	FreeTravelKm   *float64 `json:"freeTravelKm" binding:"omitempty,gte=0"`

	Projects []ProjectInput `json:"projects" binding:"omitempty,dive"`

	Availability *string `json:"availability" binding:"omitempty,is-availability"`

	Portfolio []PortfolioInput `json:"portfolio" binding:"omitempty,dive"`

	ServiceAreas []ServiceAreaInput `json:"serviceAreas" binding:"omitempty,dive"`

	ExperienceYears *int `json:"experienceYears" binding:"omitempty,gte=0"`

	VerificationStatus *string `json:"verificationStatus" binding:"omitempty,oneof=pending incomplete"`
}

type ProjectInput struct {
	Name    string  `json:"name" binding:"required"`
	Details string  `json:"details"`
	Rate    float64 `json:"rate" binding:"gte=0"`
}

type PortfolioInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Images      []string `json:"images" binding:"omitempty,max=10,dive,url"`
}

type ServiceAreaInput struct {
	Address  string   `json:"address" binding:"required"`
	RadiusKm float64  `json:"radiusKm" binding:"required,min=5,max=200"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}
