package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,19}$`)

var registerOnce sync.Once

// Register liga as regras customizadas ao validator usado pelo gin.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		Configure(v)
	})
}

func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
}

func IsPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Translate converte erros de bind/validação em erros por campo.
func Translate(err error) []httperr.FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]httperr.FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, httperr.FieldError{
				Field:   fieldPath(fe),
				Message: message(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []httperr.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type.String()),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []httperr.FieldError{{Field: "body", Message: "must be valid JSON"}}
	}

	var fieldsErr httperr.ValidationError
	if errors.As(err, &fieldsErr) {
		return fieldsErr.Fields
	}

	return []httperr.FieldError{{Field: "body", Message: err.Error()}}
}

// "CreateAppointmentRequest.client.email" -> "client.email"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "phone":
		return "must be a valid phone number"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
