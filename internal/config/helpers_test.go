// ABOUTME: Test helpers for config tests
// ABOUTME: Provides utilities for environment variable management

package config

import (
	"os"
	"testing"
)

var managedKeys = []string{
	"MIKRODASH_API_URL",
	"MIKRODASH_URL",
	"MIKRODASH_DEVICE",
	"MIKRODASH_REFRESH_INTERVAL",
	"MIKRODASH_TIMEOUT",
	"MIKRODASH_ALL_PROXY",
	"MIKRODASH_CONFIG_DIR",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

// withCleanEnv unsets every variable Load reads, then applies extra.
// t.Setenv registers the restore of the original values when the test ends.
func withCleanEnv(t *testing.T, extra map[string]string) {
	t.Helper()

	for _, key := range managedKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range extra {
		t.Setenv(key, value)
	}
}
