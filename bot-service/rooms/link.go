package rooms

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultHost  = "link.brawlstars.com"
	ValidatorTag = "roomlink"
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{6,10}$`)

// Resolver turns a room code or a full room link into the canonical link.
type Resolver struct {
	host      string
	linkRegex *regexp.Regexp
}

func NewResolver(host string) *Resolver {
	if host == "" {
		host = DefaultHost
	}

	return &Resolver{
		host:      host,
		linkRegex: regexp.MustCompile(`^https://` + regexp.QuoteMeta(host) + `/invite/gameroom/[a-z]{2}\?tag=[A-Z0-9]+$`),
	}
}

func (r *Resolver) Normalize(input string) (string, bool) {
	if strings.HasPrefix(input, "https://"+r.host) && r.linkRegex.MatchString(input) {
		return input, true
	}

	if codeRegex.MatchString(input) {
		return "https://" + r.host + "/invite/gameroom/en?tag=" + input, true
	}

	return "", false
}

func (r *Resolver) RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(ValidatorTag, func(fl validator.FieldLevel) bool {
		_, ok := r.Normalize(fl.Field().String())
		return ok
	})
}
