package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is a single rejected field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// ValidationError aggregates every rejected field of one payload.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func ValidateHotel(h Hotel) error {
	errs := checkStruct(h)
	errs = appendTimestampCheck(errs, h.CreatedAt, h.LastModifiedAt)
	return asError(errs)
}

func ValidateRoom(r Room) error {
	return asError(checkStruct(r))
}

// ValidateUser normalizes the email in place before running the checks.
func ValidateUser(u *User) error {
	u.NormalizeEmail()
	return asError(checkStruct(*u))
}

// ValidatePatch runs the struct-tag checks of a partial-update payload
// (HotelPatch, RoomPatch, UserPatch). All tags are omitempty, so absent
// fields pass and present fields obey the same rules as on create.
func ValidatePatch(p any) error {
	return asError(checkStruct(p))
}

func ValidatePeriod(p BookingPeriod) error {
	errs := checkStruct(p)
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && !p.EndDate.After(p.StartDate) {
		errs = append(errs, FieldError{Field: "end_date", Message: "end_date must be strictly after start_date"})
	}
	return asError(errs)
}

func ValidateBooking(b Booking) error {
	errs := checkStruct(b)
	if perr := ValidatePeriod(b.Period); perr != nil {
		var ve ValidationError
		if errors.As(perr, &ve) {
			errs = append(errs, ve...)
		}
	}
	errs = appendTimestampCheck(errs, b.CreatedAt, b.LastModifiedAt)
	return asError(errs)
}

// appendTimestampCheck enforces audit-trail ordering: a record cannot have
// been modified before it was created. Zero values are left to the storage
// layer's defaults.
func appendTimestampCheck(errs ValidationError, created, modified time.Time) ValidationError {
	if !created.IsZero() && !modified.IsZero() && modified.Before(created) {
		errs = append(errs, FieldError{Field: "last_modified_at", Message: "last_modified_at must not precede created_at"})
	}
	return errs
}

func checkStruct(v any) ValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationError{{Field: "payload", Message: err.Error()}}
	}
	return translate(verrs)
}

func translate(verrs validator.ValidationErrors) ValidationError {
	out := make(ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "gt":
			msg = fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
		case "uuid4":
			msg = fmt.Sprintf("%s must be a valid UUID4", fe.Field())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

func asError(errs ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
