package utils

import (
	"encoding/json"
	"errors"
	"flag"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	FailedField string
	Field       string
	Tag         string
	Value       string
}

// ParseFlags loads the env file named by -env (default .prod.env) and reports
// whether the process runs in production, which -dev turns off.
func ParseFlags() bool {
	devMode := flag.Bool("dev", false, "Run in dev mode")
	envFile := flag.String("env", "", ".env file path")

	flag.Parse()

	path := ".prod.env"
	if len(*envFile) > 0 {
		path = *envFile
	}

	if err := godotenv.Load(path); err != nil {
		if len(*envFile) > 0 || !errors.Is(err, os.ErrNotExist) {
			log.Panic().Err(err).Str("path", path).Msg("Could not load .env file")
		}
		log.Info().Str("path", path).Msg("No .env file, using process environment")
	}

	return !*devMode
}

func ValidateStruct(err error) []*ErrorResponse {
	var errs []*ErrorResponse
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs
	}

	for _, err := range validationErrors {
		errs = append(errs, &ErrorResponse{
			FailedField: err.StructNamespace(),
			Field:       err.StructField(),
			Tag:         err.Tag(),
			Value:       err.Param(),
		})
	}
	return errs
}

// ConvertConfig copies the matching fields of one config struct into another
// by round-tripping through JSON.
func ConvertConfig[T, S any](input T) (*S, error) {
	res, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	cfg := new(S)
	err = json.Unmarshal(res, cfg)

	return cfg, err
}
