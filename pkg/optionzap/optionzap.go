// Package optionzap builds zap fields from optional values.
package optionzap

import (
	"go.uber.org/zap"

	"github.com/distribution-auth/optionals/pkg/option"
)

// Field logs the value under key if o holds one. Otherwise the field is skipped.
func Field[T any](key string, o option.Option[T]) zap.Field {
	return option.Either(
		o,
		func(v T) zap.Field { return zap.Any(key, v) },
		zap.Skip,
	)
}

// FieldOr logs the value under key if o holds one, absent otherwise.
func FieldOr[T any](key string, o option.Option[T], absent string) zap.Field {
	return option.Either(
		o,
		func(v T) zap.Field { return zap.Any(key, v) },
		func() zap.Field { return zap.String(key, absent) },
	)
}

// Stringer logs the Maybe itself, so an empty value shows up as "None".
func Stringer[T any](key string, m option.Maybe[T]) zap.Field {
	return zap.Stringer(key, m)
}
