package onesignal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Config{AppID: "a", RESTAPIKey: "k"}.Validate())

	err := Config{}.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "AppID")
	assert.Contains(t, err.Error(), "RESTAPIKey")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ONESIGNAL_APP_ID", "env-app")
	t.Setenv("ONESIGNAL_REST_API_KEY", "env-key")
	t.Setenv("ONESIGNAL_USER_AUTH_KEY", "env-user")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, Config{AppID: "env-app", RESTAPIKey: "env-key", UserAuthKey: "env-user"}, cfg)
}

func TestLoadConfigFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("ONESIGNAL_APP_ID", "env-app")
	t.Setenv("ONESIGNAL_REST_API_KEY", "")

	_, err := LoadConfigFromEnv()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    Config
		wantErr error
	}{
		{
			name: "services block",
			doc: `
services:
  onesignal:
    app_id: svc-app
    rest_api_key: svc-key
`,
			want: Config{AppID: "svc-app", RESTAPIKey: "svc-key"},
		},
		{
			name: "services block wins over top level",
			doc: `
onesignal:
  app_id: top-app
  rest_api_key: top-key
services:
  onesignal:
    app_id: svc-app
    rest_api_key: svc-key
    user_auth_key: svc-user
`,
			want: Config{AppID: "svc-app", RESTAPIKey: "svc-key", UserAuthKey: "svc-user"},
		},
		{
			name: "top level fallback",
			doc: `
onesignal:
  app_id: top-app
  rest_api_key: top-key
`,
			want: Config{AppID: "top-app", RESTAPIKey: "top-key"},
		},
		{
			name:    "missing block",
			doc:     "other: {}\n",
			wantErr: ErrConfigNotFound,
		},
		{
			name: "missing key",
			doc: `
onesignal:
  app_id: top-app
`,
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig([]byte(tt.doc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("onesignal: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "onesignal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("onesignal:\n  app_id: file-app\n  rest_api_key: file-key\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file-app", cfg.AppID)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
