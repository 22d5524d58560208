package utils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("with nil values", func(t *testing.T) {
		config := NewConfig(nil)
		require.NotNil(t, config)
		assert.Empty(t, config.Keys())
	})

	t.Run("copies values", func(t *testing.T) {
		values := map[string]string{"SHEET_ID": "abc"}
		config := NewConfig(values)

		values["SHEET_ID"] = "modified"
		assert.Equal(t, "abc", config.Get("SHEET_ID"))
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("WISHES_TEST_SHEET=from_file\n"), 0644))
	t.Setenv("WISHES_TEST_PORT", "5000")
	t.Cleanup(func() { os.Unsetenv("WISHES_TEST_SHEET") })

	config := NewConfigFromEnv(envFile, filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "from_file", config.Get("WISHES_TEST_SHEET"))
	assert.Equal(t, "5000", config.Get("WISHES_TEST_PORT"))
}

func TestLoadEnvDoesNotOverride(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("WISHES_TEST_OVERRIDE=file\n"), 0644))
	t.Setenv("WISHES_TEST_OVERRIDE", "process")

	env := LoadEnv(envFile)
	assert.Equal(t, "process", env["WISHES_TEST_OVERRIDE"])
}

func TestEnvFile(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	assert.Equal(t, ".env", EnvFile())

	t.Setenv("ENV_FILE", "prod.env")
	assert.Equal(t, "prod.env", EnvFile())
}

func TestConfigGetWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"existing": "value",
		"empty":    "",
	})

	assert.Equal(t, "value", config.GetWithDefault("existing", "default"))
	assert.Equal(t, "default", config.GetWithDefault("missing", "default"))
	assert.Equal(t, "default", config.GetWithDefault("empty", "default"))
}

func TestConfigGetFirst(t *testing.T) {
	config := NewConfig(map[string]string{
		"SENDGRID_API_KEY": "legacy",
		"SMTP_API_KEY":     "",
	})

	assert.Equal(t, "legacy", config.GetFirst("SMTP_API_KEY", "SENDGRID_API_KEY"))

	config.Set("SMTP_API_KEY", "current")
	assert.Equal(t, "current", config.GetFirst("SMTP_API_KEY", "SENDGRID_API_KEY"))
	assert.Empty(t, config.GetFirst("NOPE"))
}

func TestConfigRequire(t *testing.T) {
	config := NewConfig(map[string]string{"SHEET_ID": "abc", "EMPTY": ""})

	value, err := config.Require("SHEET_ID")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	_, err = config.Require("EMPTY")
	assert.EqualError(t, err, "EMPTY not set in environment")

	_, err = config.Require("MISSING")
	assert.Error(t, err)
}

func TestConfigGetBool(t *testing.T) {
	config := NewConfig(map[string]string{
		"true_bool":      "true",
		"false_bool":     "false",
		"true_1":         "1",
		"false_0":        "0",
		"true_yes":       "YES",
		"false_no":       "no",
		"true_on":        "on",
		"false_off":      "off",
		"true_enabled":   "enabled",
		"false_disabled": "disabled",
		"invalid":        "invalid_bool",
		"empty":          "",
	})

	tests := []struct {
		key      string
		expected bool
	}{
		{"true_bool", true},
		{"false_bool", false},
		{"true_1", true},
		{"false_0", false},
		{"true_yes", true},
		{"false_no", false},
		{"true_on", true},
		{"false_off", false},
		{"true_enabled", true},
		{"false_disabled", false},
		{"invalid", false},
		{"empty", false},
		{"missing", false},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.expected, config.GetBool(test.key), "GetBool(%s)", test.key)
		})
	}

	t.Run("defaults", func(t *testing.T) {
		assert.True(t, config.GetBoolWithDefault("missing", true))
		assert.True(t, config.GetBoolWithDefault("invalid", true))
		assert.False(t, config.GetBoolWithDefault("false_bool", true))
	})
}

func TestConfigGetIntWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"valid_int":   "587",
		"invalid_int": "not_a_number",
	})

	assert.Equal(t, 587, config.GetIntWithDefault("valid_int", 25))
	assert.Equal(t, 25, config.GetIntWithDefault("invalid_int", 25))
	assert.Equal(t, 25, config.GetIntWithDefault("missing", 25))
}

func TestConfigGetDurationWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"duration": "1m30s",
		"seconds":  "20",
		"negative": "-5s",
		"invalid":  "soon",
	})

	tests := []struct {
		key      string
		expected time.Duration
	}{
		{"duration", 90 * time.Second},
		{"seconds", 20 * time.Second},
		{"negative", time.Second},
		{"invalid", time.Second},
		{"missing", time.Second},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.expected, config.GetDurationWithDefault(test.key, time.Second))
		})
	}
}

func TestConfigGetList(t *testing.T) {
	config := NewConfig(map[string]string{
		"EMAIL_TO": " a@example.com, ,b@example.com ,",
	})

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, config.GetList("EMAIL_TO"))
	assert.Nil(t, config.GetList("MISSING"))
}

func TestConfigSetHasKeys(t *testing.T) {
	config := NewConfig(map[string]string{"b": "", "a": "1"})

	assert.True(t, config.Has("b"))
	assert.False(t, config.Has("c"))

	config.Set("c", "3")
	assert.Equal(t, "3", config.Get("c"))
	assert.Equal(t, []string{"a", "b", "c"}, config.Keys())
}

func TestConfigThreadSafety(t *testing.T) {
	config := NewConfig(map[string]string{"PORT": "4000"})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				config.Set("key", "value")
				config.Get("key")
				config.GetBool("PORT")
				config.GetIntWithDefault("PORT", 0)
				config.Keys()
			}
		}(i)
	}

	wg.Wait()
	// Test passes if no data races occur
}

func TestConfigureLogging(t *testing.T) {
	defer ConfigureLogging("info", false)

	ConfigureLogging("debug", true)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	ConfigureLogging("nonsense", false)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}
