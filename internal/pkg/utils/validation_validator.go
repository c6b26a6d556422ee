package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	cpfRegex       = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	councilIDRegex = regexp.MustCompile(`^(CRM|CRO|COREN|CRF|CREFITO)-[A-Z]{2}\s?\d{4,8}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("cpf", validateCPF)
	validate.RegisterValidation("council_id", validateCouncilID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCPF(fl validator.FieldLevel) bool {
	return cpfRegex.MatchString(fl.Field().String())
}

func validateCouncilID(fl validator.FieldLevel) bool {
	return councilIDRegex.MatchString(fl.Field().String())
}
