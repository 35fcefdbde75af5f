package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/roomnest-app/roomnest-backend/internal/usecase/roommate"
)

// RegisterValidations hooks struct-level rules into gin's validator.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterStructValidation(validateCompatibilityRequest, roommate.CompatibilityRequest{})
}

// validateCompatibilityRequest rejects inverted age ranges.
func validateCompatibilityRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(roommate.CompatibilityRequest)
	if req.PrefMinAge != nil && req.PrefMaxAge != nil && *req.PrefMinAge > *req.PrefMaxAge {
		sl.ReportError(req.PrefMaxAge, "PrefMaxAge", "pref_max_age", "gtefield", "PrefMinAge")
	}
}
