package services

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/domain"
)

// validate runs ozzo rules and wraps failures as validation errors
func validate(err error) error {
	if err == nil {
		return nil
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}
	return domain.Invalid(err)
}

// oneOf accepts only the listed enum values
func oneOf[T ~string](all []T) validation.Rule {
	values := make([]interface{}, len(all))
	for i, v := range all {
		values[i] = v
	}
	return validation.In(values...).Error("must be one of " + joinEnum(all))
}

func joinEnum[T ~string](all []T) string {
	parts := make([]string, len(all))
	for i, v := range all {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// notBefore checks that end is not earlier than start when both are set
func notBefore(start *time.Time) validation.Rule {
	return validation.By(func(value interface{}) error {
		end, _ := value.(*time.Time)
		if start == nil || end == nil {
			return nil
		}
		if end.Before(*start) {
			return errors.New("must not be before the start")
		}
		return nil
	})
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// setText stores a trimmed optional string; an empty value clears it
func setText(dst **string, v *string) {
	if v == nil {
		return
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		*dst = nil
		return
	}
	*dst = &trimmed
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setTime(dst **time.Time, v *time.Time) {
	if v != nil {
		t := v.UTC()
		*dst = &t
	}
}

func setRef(dst **uint, v *uint) {
	if v != nil {
		id := *v
		*dst = &id
	}
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

// ids returns the IDs to replace a relation with, or nil when the relation is left untouched
func ids(v *[]uint) []uint {
	if v == nil {
		return nil
	}
	seen := make(map[uint]struct{}, len(*v))
	out := make([]uint, 0, len(*v))
	for _, id := range *v {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func optional(id *uint) []uint {
	if id == nil {
		return nil
	}
	return []uint{*id}
}
