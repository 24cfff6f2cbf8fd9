package server_test

import (
	"testing"
	"time"

	"revo-utils/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidEnvironment(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        bool
	}{
		{"Development", server.EnvironmentDevelopment, true},
		{"Staging", server.EnvironmentStaging, true},
		{"Production", server.EnvironmentProduction, true},
		{"Invalid", "invalid", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Environment: tt.environment}
			assert.Equal(t, tt.want, c.IsValidEnvironment())
		})
	}
}

func TestConfig_Timeouts(t *testing.T) {
	c := server.Config{}
	assert.Equal(t, 30*time.Second, c.ReadTimeout())
	assert.Equal(t, 5*time.Minute, c.WriteTimeout())

	c = server.Config{ReadTimeoutSeconds: 5, WriteTimeoutSeconds: 60}
	assert.Equal(t, 5*time.Second, c.ReadTimeout())
	assert.Equal(t, time.Minute, c.WriteTimeout())
	assert.False(t, c.IsProduction())
}
