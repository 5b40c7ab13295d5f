package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_FlattensNestedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "weather:\n  fetch:\n    start: \"Fetching weather for {0}\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, Init(path))

	assert.Equal(t, "Fetching weather for Paris", GetMessage("weather.fetch.start", "Paris"))
}

func TestInit_MissingFile(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestGetMessage_Placeholders(t *testing.T) {
	Register("test.mixed", "{0} took {1}ms ok={2} ids={3}")

	got := GetMessage("test.mixed", "lookup", 18.5, true, []string{"a", "b"})

	assert.Equal(t, `lookup took 18.5ms ok=true ids=["a","b"]`, got)
}

func TestGetMessage_Unknown(t *testing.T) {
	assert.Equal(t, "Message not found: nope", GetMessage("nope"))
}
