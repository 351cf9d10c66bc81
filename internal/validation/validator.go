package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"envlinks/internal/types"
)

type (
	// document mirrors types.Configuration with validation rules. Raw input stays
	// in this shape until it passes Parse.
	document struct {
		Environments []environment `json:"environments" validate:"required,dive"`
	}

	environment struct {
		Name  string     `json:"name" validate:"required"`
		Class string     `json:"class" validate:"required"`
		URLs  []urlEntry `json:"urls" validate:"required,dive"`
	}

	urlEntry struct {
		Name string `json:"name" validate:"required"`
		URL  string `json:"url" validate:"required"`
	}
)

var mValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate reports whether raw is an acceptable configuration document.
func Validate(raw []byte) bool {
	_, err := Parse(raw)
	return err == nil
}

// Parse decodes raw and checks it against the configuration shape. The whole
// document is rejected on the first malformed environment or URL entry.
func Parse(raw []byte) (types.Configuration, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return types.Configuration{}, err
	}

	if err := mValidator.Struct(doc); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			first := vErrs[0]
			return types.Configuration{}, types.NewError(types.ErrValidation,
				fmt.Sprintf("%s failed on '%s'", trimRoot(first.Namespace()), first.Tag()), nil)
		}
		return types.Configuration{}, types.NewError(types.ErrValidation, "", err)
	}

	return doc.toConfiguration(), nil
}

// decodeDocument unmarshals one level at a time so type errors carry the
// index of the offending environment or URL entry.
func decodeDocument(raw []byte) (document, error) {
	var top struct {
		Environments []json.RawMessage `json:"environments"`
	}
	if err := unmarshal(raw, &top, ""); err != nil {
		return document{}, err
	}

	var doc document
	if top.Environments != nil {
		doc.Environments = make([]environment, 0, len(top.Environments))
	}
	for i, rawEnv := range top.Environments {
		path := fmt.Sprintf("environments[%d]", i)
		var env struct {
			Name  string            `json:"name"`
			Class string            `json:"class"`
			URLs  []json.RawMessage `json:"urls"`
		}
		if err := unmarshal(rawEnv, &env, path); err != nil {
			return document{}, err
		}

		out := environment{Name: env.Name, Class: env.Class}
		if env.URLs != nil {
			out.URLs = make([]urlEntry, 0, len(env.URLs))
		}
		for j, rawURL := range env.URLs {
			var u urlEntry
			if err := unmarshal(rawURL, &u, fmt.Sprintf("%s.urls[%d]", path, j)); err != nil {
				return document{}, err
			}
			out.URLs = append(out.URLs, u)
		}
		doc.Environments = append(doc.Environments, out)
	}
	return doc, nil
}

func unmarshal(raw []byte, v any, path string) error {
	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return types.NewError(types.ErrValidation, fieldPath(path, typeErr), err)
	}
	return types.NewError(types.ErrParse, "", err)
}

func (d document) toConfiguration() types.Configuration {
	return types.Configuration{
		Environments: lo.Map(d.Environments, func(env environment, _ int) types.Environment {
			return types.Environment{
				Name:  env.Name,
				Class: env.Class,
				URLs: lo.Map(env.URLs, func(u urlEntry, _ int) types.URLEntry {
					return types.URLEntry{Name: u.Name, URL: u.URL}
				}),
			}
		}),
	}
}

func trimRoot(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func fieldPath(path string, err *json.UnmarshalTypeError) string {
	switch {
	case path == "" && err.Field == "":
		return "document must be a json object"
	case path == "":
		return fmt.Sprintf("%s must be %s", err.Field, describe(err.Type))
	case err.Field == "":
		return fmt.Sprintf("%s must be %s", path, describe(err.Type))
	default:
		return fmt.Sprintf("%s.%s must be %s", path, err.Field, describe(err.Type))
	}
}

func describe(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Slice:
		return "an array"
	case reflect.Struct:
		return "an object"
	default:
		return "a " + t.Kind().String()
	}
}
