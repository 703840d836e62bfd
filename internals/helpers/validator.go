package helper

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Weekdays accepted as schedule keys.
var Weekdays = map[string]struct{}{
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {},
	"Friday": {}, "Saturday": {}, "Sunday": {},
}

var timeRangeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)-([01]\d|2[0-3]):([0-5]\d)$`)

// NewValidator returns a validator that reports JSON field names and knows
// the `schedules` tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("schedules", validateSchedulesTag)
	return v
}

func validateSchedulesTag(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	if f.Kind() != reflect.Map {
		return false
	}
	m := make(map[string]string, f.Len())
	iter := f.MapRange()
	for iter.Next() {
		if iter.Key().Kind() != reflect.String || iter.Value().Kind() != reflect.String {
			return false
		}
		m[iter.Key().String()] = iter.Value().String()
	}
	return ValidateSchedules(m) == nil
}

// ValidateSchedules checks weekday keys and "HH:MM-HH:MM" values with
// start before end.
func ValidateSchedules(s map[string]string) error {
	for day, span := range s {
		if _, ok := Weekdays[day]; !ok {
			return fmt.Errorf("invalid weekday %q", day)
		}
		g := timeRangeRe.FindStringSubmatch(strings.TrimSpace(span))
		if g == nil {
			return fmt.Errorf("invalid time range %q for %s", span, day)
		}
		start := g[1] + g[2]
		end := g[3] + g[4]
		if start >= end {
			return fmt.Errorf("time range %q for %s must end after it starts", span, day)
		}
	}
	return nil
}

// ValidationError turns a validator error into a ValidationFailed whose
// message names the first offending field. Plain errors keep their text.
func ValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return ValidationFailed(fieldMessage(verrs[0]), err)
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ValidationFailed(err.Error(), err)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "schedules":
		return field + " must map weekdays to HH:MM-HH:MM ranges"
	default:
		return field + " is invalid"
	}
}
