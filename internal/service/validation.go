package service

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/journalapp/journal/internal/apperror"
	"github.com/journalapp/journal/internal/model"
)

// Validation messages.
const (
	MsgInvalidEntryID    = "entryId needs to be a number"
	MsgCredentialsNeeded = "username and password are required fields"
	MsgInvalidLogin      = "invalid login"
)

// EntryInput is the body accepted by entry create and update.
// Field order determines which missing field is reported first.
type EntryInput struct {
	Title    string `json:"title" validate:"required"`
	Notes    string `json:"notes" validate:"required"`
	PhotoURL string `json:"photoUrl" validate:"required"`
}

// Fields converts the input into storable entry fields.
func (in EntryInput) Fields() model.EntryFields {
	return model.EntryFields{Title: in.Title, Notes: in.Notes, PhotoURL: in.PhotoURL}
}

// Credentials is the body accepted by sign-up and sign-in.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateEntryInput reports the first missing field as a validation error.
func ValidateEntryInput(in EntryInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperror.Validation(fieldErrs[0].Field() + " is missing")
	}
	return apperror.Unexpected(err)
}

// ParseEntryID parses a base-10 entry id path parameter.
func ParseEntryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation(MsgInvalidEntryID)
	}
	return id, nil
}

func credentialsPresent(c Credentials) bool {
	return validate.Struct(c) == nil
}
