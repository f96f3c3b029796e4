package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/distribution-auth/optionals/pkg/option"
)

type listenerConfig struct {
	Addr  string                 `yaml:"addr"`
	Port  option.Maybe[int]      `yaml:"port"`
	Realm option.Maybe[string]   `yaml:"realm,omitempty"`
	TLS   option.Maybe[tlsFiles] `yaml:"tls,omitempty"`
}

type tlsFiles struct {
	Cert string `yaml:"cert" mapstructure:"cert"`
	Key  string `yaml:"key" mapstructure:"key"`
}

func TestMaybe_UnmarshalYAML(t *testing.T) {
	testCases := []struct {
		document string
		expected listenerConfig
	}{
		{
			document: "addr: localhost",
			expected: listenerConfig{
				Addr: "localhost",
			},
		},
		{
			document: "addr: localhost\nport: null\nrealm: ~",
			expected: listenerConfig{
				Addr: "localhost",
			},
		},
		{
			document: "addr: localhost\nport: 8080\nrealm: registry",
			expected: listenerConfig{
				Addr:  "localhost",
				Port:  option.Some(8080),
				Realm: option.Some("registry"),
			},
		},
		{
			document: "port: 0\nrealm: \"\"",
			expected: listenerConfig{
				Port:  option.Some(0),
				Realm: option.Some(""),
			},
		},
		{
			document: "tls:\n  cert: server.crt\n  key: server.key",
			expected: listenerConfig{
				TLS: option.Some(tlsFiles{
					Cert: "server.crt",
					Key:  "server.key",
				}),
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run("", func(t *testing.T) {
			var actual listenerConfig

			err := yaml.Unmarshal([]byte(testCase.document), &actual)
			require.NoError(t, err)

			assert.Equal(t, testCase.expected, actual)
		})
	}

	t.Run("Error", func(t *testing.T) {
		var actual listenerConfig

		err := yaml.Unmarshal([]byte("port: eighty"), &actual)
		require.Error(t, err)
	})
}

func TestMaybe_MarshalYAML(t *testing.T) {
	testCases := []struct {
		config   listenerConfig
		expected string
	}{
		{
			config: listenerConfig{
				Addr: "localhost",
			},
			expected: "addr: localhost\nport: null\n",
		},
		{
			config: listenerConfig{
				Addr:  "localhost",
				Port:  option.Some(8080),
				Realm: option.Some("registry"),
			},
			expected: "addr: localhost\nport: 8080\nrealm: registry\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run("", func(t *testing.T) {
			actual, err := yaml.Marshal(testCase.config)
			require.NoError(t, err)

			assert.Equal(t, testCase.expected, string(actual))
		})
	}
}
