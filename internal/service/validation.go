package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

var (
	personNamePattern = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	phonePattern      = regexp.MustCompile(`^09\d{9}$`)
	usernamePattern   = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)
	passwordPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	bookingRefPattern = regexp.MustCompile(`^[A-Za-z0-9 _\-']+$`)
)

var formRules = map[string]*regexp.Regexp{
	"personname": personNamePattern,
	"phoneph":    phonePattern,
	"username":   usernamePattern,
	"password":   passwordPattern,
	"bookingref": bookingRefPattern,
}

var ruleMessages = map[string]string{
	"required":         "is required",
	"required_without": "is required",
	"email":            "must be a valid email address",
	"personname":       "may only contain letters, spaces, hyphens and apostrophes",
	"phoneph":          "must be 11 digits starting with 09",
	"username":         "may only contain letters, digits, underscores and dots",
	"password":         "may only contain letters, digits, underscores and hyphens",
	"bookingref":       "may only contain letters, digits, spaces, underscores, hyphens and apostrophes",
	"datetime":         "has an invalid date or time format",
	"oneof":            "has an unsupported value",
}

var registerOnce sync.Map

// registerFormRules installs the portal's custom tags on v once.
func registerFormRules(v *validator.Validate) *validator.Validate {
	if v == nil {
		v = validator.New()
	}
	if _, loaded := registerOnce.LoadOrStore(v, struct{}{}); loaded {
		return v
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	for tag, pattern := range formRules {
		pattern := pattern
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
	}
	return v
}

// validationError converts validator output into a VALIDATION_ERROR listing
// every offending field.
func validationError(err error, subject string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+subject)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
		fmt.Sprintf("invalid %s: %s", subject, strings.Join(parts, "; ")))
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := ruleMessages[fe.Tag()]; ok {
		return fe.Field() + " " + msg
	}
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s is out of range", fe.Field())
	}
	return fe.Field() + " is invalid"
}
