package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests parsing and validation of the flag value
func TestNetAddress_Set(t *testing.T) {
	t.Run("valid localhost", func(t *testing.T) {
		var a NetAddress
		require.NoError(t, a.Set("localhost:8080"))
		assert.Equal(t, "localhost", a.Host)
		assert.Equal(t, 8080, a.Port)
	})

	t.Run("valid ip", func(t *testing.T) {
		var a NetAddress
		require.NoError(t, a.Set("127.0.0.1:9090"))
		assert.Equal(t, "127.0.0.1", a.Host)
	})

	t.Run("missing port", func(t *testing.T) {
		var a NetAddress
		require.Error(t, a.Set("localhost"))
	})

	t.Run("non-numeric port", func(t *testing.T) {
		var a NetAddress
		require.Error(t, a.Set("localhost:abc"))
	})

	t.Run("zero port", func(t *testing.T) {
		var a NetAddress
		require.Error(t, a.Set("localhost:0"))
	})

	t.Run("bogus host", func(t *testing.T) {
		var a NetAddress
		require.Error(t, a.Set("not-an-ip:8080"))
	})
}
