// ABOUTME: Input validation for records built by the CLI and MCP surfaces.
// ABOUTME: Registers enum-membership tags on a shared go-playground validator.
package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		tags := map[string]func(string) bool{
			"energy":       func(s string) bool { return EnergyLevel(s).IsValid() },
			"mood":         func(s string) bool { return Mood(s).IsValid() },
			"symptom":      func(s string) bool { return Symptom(s).IsValid() },
			"priority":     func(s string) bool { return Priority(s).IsValid() },
			"bucket":       func(s string) bool { return Bucket(s).IsValid() },
			"remindertype": func(s string) bool { return ReminderType(s).IsValid() },
			"notblank":     func(s string) bool { return strings.TrimSpace(s) != "" },
			"isodate":      IsDate,
		}
		for tag, fn := range tags {
			check := fn
			// Registration only fails on an empty tag or nil func.
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return check(fl.Field().String())
			})
		}
		validate = v
	})
	return validate
}

// Validate checks a CheckIn, Task or Reminder before it is handed to storage.
// The storage gateway itself accepts any record; callers own validation.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %v is not a valid %s", fe.Field(), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
