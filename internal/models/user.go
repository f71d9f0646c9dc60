package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModelWithDeleted
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`

	FullName  string   `gorm:"not null" json:"fullName"`
	Phone     string   `json:"phone,omitempty"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Location  Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	IsActive      bool       `gorm:"default:true" json:"isActive"`
	IsSuspended   bool       `gorm:"default:false" json:"-"`
	LoginAttempts int        `gorm:"default:0" json:"-"`
	LockUntil     *time.Time `json:"-"`

	EmailVerified    bool       `gorm:"default:false" json:"emailVerified"`
	EmailVerifyToken string     `json:"-"`
	EmailVerifyExp   *time.Time `json:"-"`
	ResetToken       string     `json:"-"`
	ResetTokenExp    *time.Time `json:"-"`

	ReportCount int    `gorm:"default:0" json:"-"`
	AdminNotes  string `json:"-"`

	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserID" json:"providerDetails,omitempty"`
}

// Locked reports whether the account is currently locked out after
// repeated failed logins.
func (u *User) Locked(now time.Time) bool {
	return u.LockUntil != nil && now.Before(*u.LockUntil)
}

// Skill is one entry of a provider's ordered skills list, stored as JSONB.
type Skill struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"` // 1..10
	Years       int    `json:"years"`       // >= 0
}

// ProjectOffer is a fixed-rate package a provider advertises.
type ProjectOffer struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rate    float64 `json:"rate"`
}

// PortfolioEntry holds up to ten image URLs with a caption.
type PortfolioEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// ServiceArea is a circle around an address within which a provider works.
type ServiceArea struct {
	Address  string  `json:"address"`
	RadiusKm float64 `json:"radiusKm"` // 5..200
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
}

// ProviderProfile is the provider sub-record of a User. It exists only for
// role=provider accounts and carries the verification workflow state.
type ProviderProfile struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null" json:"-"`

	Headline        string         `json:"headline,omitempty"`
	WorkDescription string         `json:"workDescription,omitempty"`
	Skills          datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	HourlyRate      float64        `json:"hourlyRate,omitempty"`
	CalloutFee      float64        `json:"calloutFee,omitempty"`
	TravelFeePerKm  float64        `json:"travelFeePerKm,omitempty"`
	FreeTravelKm    float64        `json:"freeTravelKm,omitempty"`
	Projects        datatypes.JSON `gorm:"type:jsonb" json:"projects,omitempty"`
	Availability    Availability   `gorm:"type:varchar(20);default:'offline'" json:"availability"`
	Portfolio       datatypes.JSON `gorm:"type:jsonb" json:"portfolio,omitempty"`
	ServiceAreas    datatypes.JSON `gorm:"type:jsonb" json:"serviceAreas,omitempty"`
	ExperienceYears int            `json:"experienceYears,omitempty"`

	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'incomplete'" json:"verificationStatus"`
	RejectionReason    string             `json:"rejectionReason,omitempty"`
	SubmittedAt        *time.Time         `json:"submittedAt,omitempty"`
	IsVerified         bool               `gorm:"default:false" json:"isVerified"`
}
