package validator

import (
	"github.com/go-playground/validator/v10"
)

const (
	ConditionTag = "condition"
)

var conditions = map[string]struct{}{
	"new":      {},
	"like_new": {},
	"good":     {},
	"fair":     {},
	"worn":     {},
}

var valid = map[string]func(fl validator.FieldLevel) bool{
	ConditionTag: ValidateCondition,
}

func ValidateCondition(fl validator.FieldLevel) bool {
	_, ok := conditions[fl.Field().String()]
	return ok
}
