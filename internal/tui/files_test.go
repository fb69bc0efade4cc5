package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshDirFiltersShapeFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.geojson", "b.txt", "c.wkt", "d.csv", "e.exe"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	m := New()
	m.cwd = dir
	m.refreshDir()

	require.Len(t, m.items, 3)
	assert.Equal(t, "a.geojson", m.items[0].(fileItem).Title())
	assert.Equal(t, "c.wkt", m.items[1].(fileItem).Title())
	assert.Equal(t, "d.csv", m.items[2].(fileItem).Title())
}

func TestLoadPathWKT(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "shapes.wkt")
	src := "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))\nPOINT (2 2)\n"
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))

	m := New()
	m.loadPath(p)

	assert.Len(t, m.data.Polygons, 1)
	assert.Len(t, m.data.Points, 1)
	assert.True(t, m.showPolys)
	assert.False(t, m.showPoints) // polygons take visibility precedence
	assert.Contains(t, m.status, "loaded: shapes.wkt")
	assert.Contains(t, m.status, "pts=1 segs=0 polys=1")
}

func TestLoadPathUnsupportedExtension(t *testing.T) {
	m := New()
	m.loadPath("/tmp/file.xyz")
	assert.Equal(t, "unsupported file: .xyz", m.status)
}

func TestLoadPathBadWKT(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "broken.wkt")
	require.NoError(t, os.WriteFile(p, []byte("TRIANGLE (0 0)"), 0o644))

	m := New()
	m.loadPath(p)
	assert.Contains(t, m.status, "wkt error:")
}
