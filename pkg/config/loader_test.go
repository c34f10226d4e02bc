package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"LANGKIT_TEST_NAME_DEFAULT" envDefault:"langkit"`
	Limit int    `env:"LANGKIT_TEST_LIMIT_DEFAULT" envDefault:"4"`
	Debug bool   `env:"LANGKIT_TEST_DEBUG_DEFAULT" envDefault:"true"`
}

type overrideConfig struct {
	Limit int `env:"LANGKIT_TEST_LIMIT" envDefault:"4"`
}

type cachedConfig struct {
	Value string `env:"LANGKIT_TEST_CACHED"`
}

type requiredConfig struct {
	Value string `env:"LANGKIT_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string   `env:"LANGKIT_TEST_FILE_VALUE"`
	List  []string `env:"LANGKIT_TEST_FILE_LIST" envSeparator:","`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "langkit", cfg.Name)
	assert.Equal(t, 4, cfg.Limit)
	assert.True(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("LANGKIT_TEST_LIMIT", "16")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 16, cfg.Limit)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("LANGKIT_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("LANGKIT_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached copy wins until the cache is reset")

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("LANGKIT_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(func() {
		os.Unsetenv("LANGKIT_TEST_FILE_VALUE")
		os.Unsetenv("LANGKIT_TEST_FILE_LIST")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
