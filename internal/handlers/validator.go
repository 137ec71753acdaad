package handlers

import (
	"fmt"
	"strings"

	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs to
// gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("vehicletype", validateVehicleType)
}

// validateVehicleType accepts "new" or "used", case-insensitively.
func validateVehicleType(fl validator.FieldLevel) bool {
	switch commission.VehicleType(strings.ToLower(strings.TrimSpace(fl.Field().String()))) {
	case commission.VehicleNew, commission.VehicleUsed:
		return true
	}
	return false
}
