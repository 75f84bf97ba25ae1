package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type args struct {
		Room    string `validate:"required"`
		Content string `validate:"max=3"`
	}

	errs := ValidateStruct(validator.New().Struct(args{Content: "toolong"}))
	require.Len(t, errs, 2)
	assert.Equal(t, "args.Room", errs[0].FailedField)
	assert.Equal(t, "Room", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "Content", errs[1].Field)
	assert.Equal(t, "3", errs[1].Value)

	assert.Empty(t, ValidateStruct(nil))
	assert.Empty(t, ValidateStruct(errors.New("not a validation error")))
}

func TestConvertConfig(t *testing.T) {
	type full struct {
		Dsn          string
		RedisUrl     string
		IsProduction bool
	}

	pg, err := ConvertConfig[*full, PostgresConfig](&full{Dsn: "postgres://x", RedisUrl: "redis://y", IsProduction: true})
	require.NoError(t, err)
	assert.Equal(t, &PostgresConfig{Dsn: "postgres://x", IsProduction: true}, pg)
}
