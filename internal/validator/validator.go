// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("recurrence", validateRecurrence)
		_ = v.RegisterValidation("interest_type", validateInterestType)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateRecurrence(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "none", "daily", "weekly", "monthly", "yearly":
		return true
	}
	return false
}

func validateInterestType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "simple", "compound":
		return true
	}
	return false
}
