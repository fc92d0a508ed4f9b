package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Query string `validate:"required,min=3"`
		Limit int    `validate:"gte=1,lte=100"`
	}

	assert.Nil(t, ValidateStruct(payload{Query: "dream heist", Limit: 10}))

	errs := ValidateStruct(payload{Limit: 400})
	assert.Equal(t, "This field is required", errs["Query"])
	assert.Equal(t, "Must be 100 or less", errs["Limit"])

	errs = ValidateStruct(payload{Query: "ab", Limit: 1})
	assert.Equal(t, "Must be at least 3", errs["Query"])
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Limit": "Must be 100 or less"})
	assert.Equal(t, "Limit: Must be 100 or less", out)
}
