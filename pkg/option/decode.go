package option

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// decoder is implemented by *Maybe[T] for every T.
type decoder interface {
	decode(input interface{}, config mapstructure.DecoderConfig) error
}

// DecodeHook returns a mapstructure hook that decodes raw input into Maybe fields.
//
// The value held by a Maybe is decoded with a configuration built by opts.
// Pass the hooks and settings of the surrounding decoder there (or use NewDecoder),
// otherwise Maybe[T] fields are decoded with mapstructure defaults.
// The returned hook is appended to the configured hooks, so nested Maybe values work.
//
// Nil input is never passed to hooks by mapstructure, so absent or null keys leave the field None.
func DecodeHook(opts ...func(*mapstructure.DecoderConfig)) mapstructure.DecodeHookFuncType {
	var inner mapstructure.DecoderConfig

	for _, opt := range opts {
		opt(&inner)
	}

	var hook mapstructure.DecodeHookFuncType

	hook = func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from == to {
			return data, nil
		}

		target, ok := reflect.New(to).Interface().(decoder)
		if !ok {
			return data, nil
		}

		config := inner
		config.Metadata = nil
		config.DecodeHook = composeHook(inner.DecodeHook, hook)

		err := target.decode(data, config)
		if err != nil {
			return nil, err
		}

		return reflect.ValueOf(target).Elem().Interface(), nil
	}

	return hook
}

// NewDecoder returns a mapstructure decoder for config that also decodes Maybe fields.
//
// Values held by Maybe fields are decoded with the same hooks and settings as the rest of the input.
func NewDecoder(config *mapstructure.DecoderConfig) (*mapstructure.Decoder, error) {
	inner := *config
	inner.Result = nil
	inner.Metadata = nil

	hook := DecodeHook(func(c *mapstructure.DecoderConfig) {
		*c = inner
	})

	outer := *config
	outer.DecodeHook = composeHook(config.DecodeHook, hook)

	return mapstructure.NewDecoder(&outer)
}

// Decode decodes input into output, using DecodeHook for Maybe fields.
func Decode(input interface{}, output interface{}) error {
	dec, err := NewDecoder(&mapstructure.DecoderConfig{
		Result: output,
	})
	if err != nil {
		return err
	}

	return dec.Decode(input)
}

func composeHook(hook mapstructure.DecodeHookFunc, maybeHook mapstructure.DecodeHookFuncType) mapstructure.DecodeHookFunc {
	if hook == nil {
		return maybeHook
	}

	return mapstructure.ComposeDecodeHookFunc(hook, maybeHook)
}

func (m *Maybe[T]) decode(input interface{}, config mapstructure.DecoderConfig) error {
	if input == nil {
		*m = None[T]()

		return nil
	}

	var v T

	config.Result = &v

	dec, err := mapstructure.NewDecoder(&config)
	if err != nil {
		return err
	}

	err = dec.Decode(input)
	if err != nil {
		return fmt.Errorf("option: %w", err)
	}

	*m = Some(v)

	return nil
}
