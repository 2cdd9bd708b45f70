package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"salary-predictor-service/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// mapDomainError picks the status and the message shown above the form.
func mapDomainError(err error) (int, string) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidAge),
		errors.Is(err, domain.ErrInvalidExperience),
		errors.Is(err, domain.ErrInvalidEducation),
		errors.Is(err, domain.ErrInvalidJobRole):
		return http.StatusBadRequest, err.Error()

	// Service unavailable errors
	case errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusServiceUnavailable, "The salary model is currently unavailable. Please try again later."

	default:
		return http.StatusInternalServerError, "The salary could not be estimated."
	}
}

var fieldLabels = map[string]string{
	"Age":               "Age",
	"Education":         "Education Level",
	"JobRole":           "Job Role",
	"PriorExperience":   "Prior Experience",
	"CurrentExperience": "Current Company Experience",
}

// bindErrorMessage turns a form binding failure into a sentence per field.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "The form could not be read: check that every field holds a whole number or a listed option."
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := fieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required.", label))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s.", label, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s.", label, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid.", label))
		}
	}
	return strings.Join(msgs, " ")
}
