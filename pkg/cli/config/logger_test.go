package config_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/tracefetch/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "Valid level: debug", level: "debug"},
		{name: "Valid level: DEBUG (case insensitive)", level: "DEBUG"},
		{name: "Valid level: info", level: "info"},
		{name: "Valid level: warn", level: "warn"},
		{name: "Valid level: ERROR", level: "ERROR"},
		{name: "Invalid level: empty string", level: "", wantErr: true},
		{name: "Invalid level: random", level: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level:  tt.level,
				Format: "console",
				Writer: &bytes.Buffer{},
			}

			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, result).NotNil()
		})
	}
}

func TestLogger_Configure_Format(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &config.Logger{Level: "info", Format: "json", Writer: &buf}

		result, err := logger.Configure()
		gt.NoError(t, err)

		result.Info("test log message", "key", "value")
		gt.String(t, buf.String()).Contains(`"msg":"test log message"`)
		gt.String(t, buf.String()).Contains(`"key":"value"`)
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &config.Logger{Level: "info", Format: "console", Writer: &buf}

		result, err := logger.Configure()
		gt.NoError(t, err)

		result.Info("test log message")
		gt.String(t, buf.String()).Contains("test log message")
	})

	t.Run("unknown", func(t *testing.T) {
		logger := &config.Logger{Level: "info", Format: "xml"}
		_, err := logger.Configure()
		gt.Error(t, err)
	})
}

func TestLogger_Configure_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "debug", Format: "json", Writer: &buf}

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Debug("GitHub configuration", "github", config.GitHub{
		Token:  "ghp_very_secret_value",
		APIURL: "https://api.github.com",
	})

	gt.String(t, buf.String()).NotContains("ghp_very_secret_value")
	gt.String(t, buf.String()).Contains("https://api.github.com")
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()

	gt.Number(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		names := flag.Names()
		if len(names) > 0 {
			flagNames[names[0]] = true
		}
	}

	gt.Value(t, flagNames["log-level"]).Equal(true)
	gt.Value(t, flagNames["log-format"]).Equal(true)
}
