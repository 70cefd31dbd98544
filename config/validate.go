package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// describe flattens validator errors into "path message; path message".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldPath(fe)+" "+message(fe))
	}

	return strings.Join(msgs, "; ")
}

// fieldPath drops the root struct name: "Entry.nrg.fit_stop" → "nrg.fit_stop".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s element(s)", fe.Param())
	case "unique":
		return "must not repeat names"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "lte":
		op := map[string]string{"gte": ">=", "lte": "<="}[fe.Tag()]
		return fmt.Sprintf("must be %s %s", op, fe.Param())
	case "gtefield", "gtfield":
		op := map[string]string{"gtefield": ">=", "gtfield": ">"}[fe.Tag()]
		return fmt.Sprintf("must be %s %s", op, yamlKey(fe))
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

// yamlKey maps the Go field named by a cross-field tag to its YAML key.
func yamlKey(fe validator.FieldError) string {
	var b strings.Builder
	for i, r := range fe.Param() {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}
