package interview

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/talentscout/internal/utils"
)

// ErrInvalidProfile wraps every profile validation failure.
var ErrInvalidProfile = errors.New("invalid candidate profile")

const minPhoneDigits = 8

// Profile is what the candidate tells us before the interview starts.
type Profile struct {
	Name             string   `mapstructure:"name" json:"full_name"`
	Email            string   `mapstructure:"email" json:"email"`
	Phone            string   `mapstructure:"phone" json:"phone"`
	YearsExperience  float64  `mapstructure:"years-experience" json:"years_experience"`
	DesiredPositions string   `mapstructure:"desired-positions" json:"desired_positions"`
	Location         string   `mapstructure:"location" json:"location"`
	Technologies     []string `mapstructure:"technologies" json:"tech_stack"`
}

// Normalize trims every text field and drops blank technologies.
func (p Profile) Normalize() Profile {
	out := Profile{
		Name:             strings.TrimSpace(p.Name),
		Email:            strings.TrimSpace(p.Email),
		Phone:            strings.TrimSpace(p.Phone),
		YearsExperience:  p.YearsExperience,
		DesiredPositions: strings.TrimSpace(p.DesiredPositions),
		Location:         strings.TrimSpace(p.Location),
	}
	for _, tech := range p.Technologies {
		if tech = strings.TrimSpace(tech); tech != "" {
			out.Technologies = append(out.Technologies, tech)
		}
	}
	return out
}

// Validate reports the first problem with the profile, if any.
func (p Profile) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if err := ValidateEmail(p.Email); err != nil {
		return err
	}
	if err := ValidatePhone(p.Phone); err != nil {
		return err
	}
	if p.YearsExperience < 0 || math.IsNaN(p.YearsExperience) || math.IsInf(p.YearsExperience, 0) {
		return fmt.Errorf("%w: years of experience must be a non-negative number", ErrInvalidProfile)
	}
	for _, tech := range p.Technologies {
		if strings.TrimSpace(tech) == "" {
			return fmt.Errorf("%w: technology names must not be empty", ErrInvalidProfile)
		}
	}
	if len(p.Technologies) == 0 {
		return fmt.Errorf("%w: enter at least one technology in the tech stack", ErrInvalidProfile)
	}
	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidProfile)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("%w: enter a valid email", ErrInvalidProfile)
	}
	return nil
}

func ValidatePhone(phone string) error {
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < minPhoneDigits {
		return fmt.Errorf("%w: enter a valid phone number with country code", ErrInvalidProfile)
	}
	return nil
}

// ValidateTechnologies accepts a comma-separated tech stack.
func ValidateTechnologies(stack string) error {
	if len(utils.SplitList(stack)) == 0 {
		return fmt.Errorf("%w: enter at least one technology in the tech stack", ErrInvalidProfile)
	}
	return nil
}

// ProfileFromMap decodes a profile from loosely typed configuration, e.g.
// years given as a string or technologies as a comma-separated string.
func ProfileFromMap(raw map[string]any) (Profile, error) {
	var p Profile

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(splitListHook),
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return Profile{}, fmt.Errorf("create profile decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Profile{}, fmt.Errorf("decode candidate profile: %w", err)
	}

	return p.Normalize(), nil
}

func splitListHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
		return data, nil
	}
	return utils.SplitList(data.(string)), nil
}
