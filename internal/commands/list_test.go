package commands

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/magpie/pkg/catalog"
)

func TestRunListAll(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")

	require.NoError(t, runList(cmd, ""))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Singleton")
	assert.Contains(t, out, "Visitor")

	// Header plus all 23 patterns.
	assert.Equal(t, 24, strings.Count(out, "\n"))
}

func TestRunListByCategory(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")

	require.NoError(t, runList(cmd, "creational"))

	out := buf.String()
	assert.Contains(t, out, "Singleton")
	assert.Contains(t, out, "Builder")
	assert.NotContains(t, out, "Observer")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestRunListCategoryIgnoresCase(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")

	require.NoError(t, runList(cmd, "BEHAVIORAL"))

	out := buf.String()
	assert.Contains(t, out, "Observer")
	assert.Equal(t, 12, strings.Count(out, "\n"))
}

func TestRunListUnknownCategory(t *testing.T) {
	isolateEnv(t)
	cmd, _ := testCmd("")

	err := runList(cmd, "Creationl")
	require.Error(t, err)

	var qerr *catalog.InvalidQueryError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, "category", qerr.Param)
	assert.Equal(t, "Creationl", qerr.Value)
	assert.Equal(t, 2, exitCode(err))
}

func TestRunListCustomCatalog(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd(filepath.Join("testdata", "custom.yml"))

	require.NoError(t, runList(cmd, ""))

	out := buf.String()
	assert.Contains(t, out, "Null Object")
	assert.Contains(t, out, "Object Pool")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}
