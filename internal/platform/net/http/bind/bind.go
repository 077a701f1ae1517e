// Package bind decodes and validates JSON request bodies for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// MaxBytes caps a request body, larger bodies fail to decode
const MaxBytes = 1 << 20

type validatorSvc struct {
	v     *validator.Validate
	trans ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *validatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// get returns the validator singleton with english messages keyed by json tag names
func get() *validatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// short messages for bounds
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		vSvc = &validatorSvc{v: v, trans: trans}
	})
	return vSvc
}

func jsonName(fld reflect.StructField) string {
	tag, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	return tag
}

// ParseJSON decodes a single JSON object into T, rejecting unknown fields, then validates it
// GET requests with no body yield the zero value
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	// peek one byte so an empty body gets its own message
	buf := make([]byte, 1)
	n, _ := r.Body.Read(buf)
	if n == 0 {
		if r.Method == http.MethodGet {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(io.LimitReader(io.MultiReader(bytes.NewReader(buf[:n]), r.Body), MaxBytes))
	dec.DisallowUnknownFields()

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := get().v.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := firstFailure(err)
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

// firstFailure returns the json name and translated message of the first failing field
func firstFailure(err error) (field, msg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(get().trans)
	}
	return "", err.Error()
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
