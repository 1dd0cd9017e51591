package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/VladPetriv/finance_tracker/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	testCases := [...]struct {
		desc     string
		env      map[string]string
		expected *config.Config
		wantErr  bool
	}{
		{
			desc: "defaults applied when only uri is set",
			env: map[string]string{
				"MONGODB_URI": "mongodb://localhost:27017",
			},
			expected: &config.Config{
				HTTP: config.HTTP{Port: "3000", RequestTimeout: 15 * time.Second},
				MongoDB: config.MongoDB{
					URI:            "mongodb://localhost:27017",
					Database:       "finance_tracker",
					ConnectTimeout: 10 * time.Second,
				},
				Logger:  config.Logger{LogLevel: "debug"},
				Resolve: config.Resolve{Workers: 4},
			},
		},
		{
			desc: "values read from environment",
			env: map[string]string{
				"PORT":                        "8080",
				"HTTP_REQUEST_TIMEOUT":        "3s",
				"MONGODB_URI":                 "mongodb://mongo:27017",
				"MONGODB_DATABASE":            "tracker",
				"MONGODB_CONNECT_TIMEOUT":     "2s",
				"FT_LOGGER_LOG_LEVEL":         "info",
				"FT_LOGGER_LOG_FILENAME":      "tracker.log",
				"FT_LOGGER_PRETTY_LOG_OUTPUT": "true",
				"RESOLVE_WORKERS":             "8",
			},
			expected: &config.Config{
				HTTP: config.HTTP{Port: "8080", RequestTimeout: 3 * time.Second},
				MongoDB: config.MongoDB{
					URI:            "mongodb://mongo:27017",
					Database:       "tracker",
					ConnectTimeout: 2 * time.Second,
				},
				Logger: config.Logger{
					LogLevel:        "info",
					LogFilename:     "tracker.log",
					PrettyLogOutput: true,
				},
				Resolve: config.Resolve{Workers: 8},
			},
		},
		{
			desc:    "missing uri",
			env:     map[string]string{},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			actual, err := config.Read()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, ":"+tc.expected.HTTP.Port, actual.HTTP.Address())
		})
	}
}

var configEnv = []string{
	"PORT",
	"HTTP_REQUEST_TIMEOUT",
	"MONGODB_URI",
	"MONGODB_DATABASE",
	"MONGODB_CONNECT_TIMEOUT",
	"FT_LOGGER_LOG_LEVEL",
	"FT_LOGGER_LOG_FILENAME",
	"FT_LOGGER_PRETTY_LOG_OUTPUT",
	"RESOLVE_WORKERS",
}

// clearEnv unsets config variables, t.Setenv restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
