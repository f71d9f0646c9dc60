package validator

import (
	"log"

	"fixmate_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the enum rules backed by models/statuses.go.
// Empty values pass: presence is the 'required' tag's concern.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-category", validateJobCategory)
	mustRegister("is-urgency", validateUrgency)
	mustRegister("is-payment-type", validatePaymentType)
	mustRegister("is-duration-unit", validateDurationUnit)
	mustRegister("is-availability", validateAvailability)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleCustomer, models.UserRoleProvider, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateJobCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidJobCategory(models.JobCategory(value))
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Urgency(value) {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
		return true
	default:
		return false
	}
}

func validatePaymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PaymentType(value) {
	case models.PaymentTypeFixed, models.PaymentTypeHourly:
		return true
	default:
		return false
	}
}

func validateDurationUnit(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.DurationUnit(value) {
	case models.DurationUnitHours, models.DurationUnitDays:
		return true
	default:
		return false
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Availability(value) {
	case models.AvailabilityAvailable, models.AvailabilityBusy, models.AvailabilityOffline:
		return true
	default:
		return false
	}
}
