package service

import (
	"context"
	"reflect"
	"strings"
)

// trimmed returns v with every exported string field trimmed of surrounding space.
func trimmed[T any](v T) T {
	trimStrings(reflect.ValueOf(&v).Elem())
	return v
}

func trimStrings(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		switch {
		case fv.Kind() == reflect.String:
			fv.SetString(strings.TrimSpace(fv.String()))
		case field.Anonymous && fv.Kind() == reflect.Struct:
			trimStrings(fv)
		}
	}
}

func trimHook[T any](_ context.Context, item *T) error {
	*item = trimmed(*item)
	return nil
}
