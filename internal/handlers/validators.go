package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lifedash/finances/internal/core/domain"
)

// registerValidators installs the enum validators the dto binding tags use.
// Registration is idempotent; re-registering the same tag just replaces it.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.AccountType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("categorytype", func(fl validator.FieldLevel) bool {
		return domain.CategoryType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("transactiontype", func(fl validator.FieldLevel) bool {
		return domain.TransactionType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("recurfreq", func(fl validator.FieldLevel) bool {
		return domain.RecurringFrequency(fl.Field().String()).IsValid()
	})
}
