package validator

import (
	"log"
	"net/url"
	"strings"

	"lms_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires all custom validation functions into the
// validator instance.
func registerCustomRules(v *validator.Validate, allowedVideoDomains []string) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("video-url", videoURLRule(allowedVideoDomains))
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-payment-type", validatePaymentType)
}

// videoURLRule restricts a URL field to the allowed domains. Empty values
// pass: the field is optional, 'required' handles presence.
func videoURLRule(allowedDomains []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return ValidateVideoURL(value, allowedDomains) == nil
	}
}

// ValidateVideoURL checks that the value is an absolute http/https URL whose
// host equals or is a subdomain of one of the allowed domains. The empty
// string is valid.
func ValidateVideoURL(value string, allowedDomains []string) error {
	if value == "" {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return &ValidationError{Errors: map[string]string{"video_url": "Must be a valid URL"}}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Errors: map[string]string{"video_url": "Only http and https links are allowed"}}
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return &ValidationError{Errors: map[string]string{"video_url": "URL must have a host"}}
	}

	for _, d := range allowedDomains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return nil
		}
	}

	return &ValidationError{Errors: map[string]string{
		"video_url": "Video links are restricted to: " + strings.Join(allowedDomains, ", "),
	}}
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}

	switch models.UserRole(value) {
	case models.UserRoleMember, models.UserRoleModerator, models.UserRoleAdmin:
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
	case models.PaymentTypeCash, models.PaymentTypeTransfer:
		return true
	default:
		return false
	}
}
