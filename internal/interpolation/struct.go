package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TagName marks the fields InterpolateStruct expands: `env_interpolation:"yes"`.
const TagName = "env_interpolation"

// InterpolateStruct expands the tagged fields of the struct v points to, in
// place. Tagged fields may be strings, string pointers, string slices, nested
// structs or slices of structs; nested structs are walked with the same rules.
func InterpolateStruct(v any, lookup LookupFunc) error {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	if val.IsNil() {
		return nil
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	return interpolateStruct(val, "", lookup)
}

func interpolateStruct(val reflect.Value, path string, lookup LookupFunc) error {
	typ := val.Type()
	var errs []error

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() || strings.ToLower(fieldType.Tag.Get(TagName)) != "yes" {
			continue
		}
		name := fieldType.Name
		if path != "" {
			name = path + "." + name
		}
		if err := interpolateValue(field, name, lookup); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// interpolateValue expands field, naming it path in errors.
func interpolateValue(field reflect.Value, path string, lookup LookupFunc) error {
	switch field.Kind() {
	case reflect.String:
		return expandValue(field, path, lookup)

	case reflect.Pointer:
		if field.IsNil() {
			return nil
		}
		switch field.Elem().Kind() {
		case reflect.String:
			return expandValue(field.Elem(), path, lookup)
		case reflect.Struct:
			return interpolateStruct(field.Elem(), path, lookup)
		}

	case reflect.Struct:
		return interpolateStruct(field, path, lookup)

	case reflect.Slice:
		var errs []error
		for j := 0; j < field.Len(); j++ {
			if err := interpolateValue(field.Index(j), fmt.Sprintf("%s[%d]", path, j), lookup); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	return nil
}

func expandValue(v reflect.Value, path string, lookup LookupFunc) error {
	original := v.String()
	if original == "" {
		return nil
	}
	expanded, err := Expand(original, lookup)
	if err != nil {
		return fmt.Errorf("field %s: %w", path, err)
	}
	v.SetString(expanded)
	return nil
}
