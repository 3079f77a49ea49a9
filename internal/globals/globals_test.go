package globals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeclaresECMAScriptBuiltins(t *testing.T) {
	s := Default()
	assert.True(t, s.IsDeclared("Array"))
	assert.True(t, s.IsDeclared("Promise"))
	assert.False(t, s.IsWritable("Array"))
	assert.False(t, s.IsDeclared("window"))
}

func TestBrowserExtendsDefaultWithWritableWindow(t *testing.T) {
	s := Browser()
	assert.True(t, s.IsDeclared("Array"))
	assert.True(t, s.IsDeclared("window"))
	assert.True(t, s.IsWritable("window"))
	assert.True(t, s.IsDeclared("fetch"))
	assert.False(t, s.IsWritable("fetch"))
}

func TestNodeDeclaresModuleGlobals(t *testing.T) {
	s := Node()
	assert.True(t, s.IsDeclared("require"))
	assert.True(t, s.IsWritable("module"))
}

func TestJestSupersetsJasmine(t *testing.T) {
	s := Jest()
	assert.True(t, s.IsDeclared("describe"))
	assert.True(t, s.IsDeclared("jest"))
}

func TestByNameResolvesKnownPresets(t *testing.T) {
	for _, name := range []string{"default", "browser", "node", "web-worker", "jasmine", "jest"} {
		set, ok := ByName(name)
		require.True(t, ok, name)
		assert.NotNil(t, set)
	}
	_, ok := ByName("nonsense")
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	base := Default()
	clone := base.Clone()
	clone.addWritable("myGlobal")
	assert.True(t, clone.IsDeclared("myGlobal"))
	assert.False(t, base.IsDeclared("myGlobal"))
}

func TestLoadOverrideFileMergesOntoBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globals.yaml")
	contents := "globals:\n  MyReadonlyGlobal: false\nwritable-globals:\n  - myWritableGlobal\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	merged, err := LoadOverrideFile(path, Default())
	require.NoError(t, err)

	assert.True(t, merged.IsDeclared("Array"))
	assert.True(t, merged.IsDeclared("MyReadonlyGlobal"))
	assert.False(t, merged.IsWritable("MyReadonlyGlobal"))
	assert.True(t, merged.IsWritable("myWritableGlobal"))
}

func TestLoadOverrideFileMissingPath(t *testing.T) {
	_, err := LoadOverrideFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.Error(t, err)
}
