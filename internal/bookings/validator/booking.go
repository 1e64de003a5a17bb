package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"classbook/pkg/logger"
	"classbook/pkg/model"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	TagRequired = "required"
	TagEmail    = "email"
)

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// HasTag reports whether any field failed the given rule.
func (v ValidationErrors) HasTag(tag string) bool {
	for _, err := range v {
		if err.Tag == tag {
			return true
		}
	}
	return false
}

// Fields maps each failing field to its message, for error details.
func (v ValidationErrors) Fields() map[string]any {
	fields := make(map[string]any, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return fields
}

type BookingValidator struct {
	validate *validator.Validate
	trans    ut.Translator
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		log.Fatal("Failed to register validator translations", "error", err)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		trans:    trans,
		logger:   log,
	}
}

func (v *BookingValidator) ValidateRequest(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) ValidateEmail(email string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := err.Field()
		message := err.Translate(v.trans)
		if field == "" {
			// Var has no field name; the translation starts with a blank placeholder.
			field = "email"
			message = field + message
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Tag:     err.Tag(),
			Message: message,
		})
	}

	return validationErrors
}
