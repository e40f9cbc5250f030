// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("item_category", validateItemCategory)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateItemCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "food", "drink", "dessert", "other":
		return true
	}
	return false
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
