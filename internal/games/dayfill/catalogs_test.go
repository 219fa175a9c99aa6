package dayfill

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/registry"
)

func TestClassicRegistered(t *testing.T) {
	c, err := registry.Get(ClassicCatalogID)
	require.NoError(t, err)
	assert.Equal(t, 14, c.Len())
}

func TestRegisterCatalogDir(t *testing.T) {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "testdata", "catalogs")

	n, err := RegisterCatalogDir(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, registry.Exists("mini"))
	assert.True(t, registry.Exists("wide"))

	// Second pass finds the same ids already taken.
	n, err = RegisterCatalogDir(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
