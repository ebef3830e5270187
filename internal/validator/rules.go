package validator

import (
	"log"

	"github.com/kamranshamim45/ai-job-portal/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain status/role rules into the validator
// instance. Registration failure is a startup defect, not a runtime error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-job-status", validateJobStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	return models.ValidRole(models.UserRole(value))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusPending, models.JobStatusApproved, models.JobStatusActive,
		models.JobStatusRejected, models.JobStatusInactive, models.JobStatusClosed:
		return true
	}
	return false
}
