package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateSecretKey(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr bool
	}{
		{name: "dev allows empty secret", env: "dev", secret: "", wantErr: false},
		{name: "local allows placeholder", env: "local", secret: "supersecretkey", wantErr: false},
		{name: "production rejects empty secret", env: "production", secret: "", wantErr: true},
		{name: "production rejects whitespace secret", env: "production", secret: "   ", wantErr: true},
		{name: "production rejects known placeholder", env: "production", secret: "supersecretkey", wantErr: true},
		{name: "production rejects placeholder case-insensitively", env: "production", secret: "Fallback_Secret_Key", wantErr: true},
		{name: "production accepts real secret", env: "production", secret: "d41d8cd98f00b204e9800998ecf8427e", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Env.Env = tt.env
			cfg.SecretKey.Access = tt.secret

			err := cfg.ValidateSecretKey()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessTokenTTL(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 60*time.Minute, cfg.AccessTokenTTL())

	cfg.SecretKey.AccessTTLMinutes = 15
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL())

	cfg.SecretKey.AccessTTLMinutes = -1
	assert.Equal(t, 60*time.Minute, cfg.AccessTokenTTL())
}
