package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var ErrUninitializedField = errors.New("struct field is not initialized")

// IsStructInitialized returns an error naming the first exported field of *s that
// is still nil. Struct fields tagged `util:"nested"` are checked recursively.
func IsStructInitialized(s any) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("%w: nil struct pointer", ErrUninitializedField)
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := range v.NumField() {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		switch field.Kind() { //nolint:exhaustive
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				return fmt.Errorf("%w: %s", ErrUninitializedField, fieldType.Name)
			}
		case reflect.Struct:
			if strings.Contains(fieldType.Tag.Get("util"), "nested") {
				if err := IsStructInitialized(field.Addr().Interface()); err != nil {
					return fmt.Errorf("%s.%w", fieldType.Name, err)
				}
			}
		}
	}

	return nil
}
