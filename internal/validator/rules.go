package validator

import (
	"log"
	"strings"

	"atelier_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-order-status", validateOrderStatus)
	mustRegister("is-freelancer-status", validateFreelancerStatus)
	// Like required, but whitespace-only strings fail too.
	mustRegister("trimmed-required", validateTrimmedRequired)
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return models.OrderStatus(value).IsValid()
}

func validateFreelancerStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.FreelancerStatus(value).IsValid()
}

func validateTrimmedRequired(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func orderStatusNames() []string {
	names := make([]string, 0, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		names = append(names, string(s))
	}
	return names
}

func freelancerStatusNames() []string {
	names := make([]string, 0, len(models.FreelancerStatuses))
	for _, s := range models.FreelancerStatuses {
		names = append(names, string(s))
	}
	return names
}
