package handlers

import (
	"sync"

	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("currency", validateCurrency)
		}
	})
}

// validateCurrency accepts three-letter currency codes in any case.
func validateCurrency(fl validator.FieldLevel) bool {
	return domain.NormalizeCurrency(fl.Field().String()).Valid()
}
