package option

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const yamlNullTag = "!!null"

// UnmarshalYAML implements the yaml.Unmarshaler interface.
//
// A null node decodes to None. A missing key leaves the field untouched, which is None for a zero value.
func (m *Maybe[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == yamlNullTag {
		*m = None[T]()

		return nil
	}

	var v T

	err := value.Decode(&v)
	if err != nil {
		return fmt.Errorf("option: %w", err)
	}

	*m = Some(v)

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
//
// None is marshaled as null.
func (m Maybe[T]) MarshalYAML() (interface{}, error) {
	if !m.present {
		return nil, nil
	}

	return m.value, nil
}

// IsZero implements the yaml.IsZeroer interface, so None fields tagged with omitempty are left out.
func (m Maybe[T]) IsZero() bool {
	return !m.present
}
