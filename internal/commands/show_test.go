package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShow(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")

	require.NoError(t, runShow(cmd, "Singleton"))

	out := buf.String()
	assert.Contains(t, out, "Singleton")
	assert.Contains(t, out, "(Creational)")
	assert.Contains(t, out, "exactly one instance")
	assert.Contains(t, out, "Participants")
	assert.Contains(t, out, "Keywords:")
	assert.Contains(t, out, "single instance")
	assert.Contains(t, out, "Related:")
	assert.Contains(t, out, "Abstract Factory")
}

func TestRunShowAlsoKnownAs(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")

	require.NoError(t, runShow(cmd, "Factory Method"))

	out := buf.String()
	assert.Contains(t, out, "Also known as:")
	assert.Contains(t, out, "Virtual Constructor")
}

func TestRunShowNotFound(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")

	err := runShow(cmd, "Monostate")
	require.Error(t, err)

	var nfe *notFoundError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, "pattern not found: Monostate", err.Error())
	assert.Equal(t, 1, exitCode(err))
	assert.Zero(t, buf.Len())
}

func TestRunShowNameIsCaseSensitive(t *testing.T) {
	isolateEnv(t)
	cmd, _ := testCmd("")

	err := runShow(cmd, "singleton")
	require.Error(t, err)
	assert.Equal(t, "pattern not found: singleton", err.Error())
}
