package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
)

// DiskRoot is checked before the embedded copies, so edits under it take
// effect without a rebuild.
const DiskRoot = "prefabs"

const scriptDir = "scripts"

//go:embed *.yaml scripts/*.tengo
var bundled embed.FS

// Load reads a simulation spec by file name.
func Load(name string) ([]byte, error) {
	return readPrefab("", name)
}

// LoadScript reads a spawn script by file name.
func LoadScript(name string) ([]byte, error) {
	return readPrefab(scriptDir, name)
}

// readPrefab resolves name inside dir. Leading "prefabs/" and dir
// components are accepted and ignored.
func readPrefab(dir, name string) ([]byte, error) {
	base := path.Base(filepath.ToSlash(name))
	if base == "." || base == "/" || base == ".." {
		return nil, os.ErrNotExist
	}
	rel := path.Join(dir, base)
	if data, err := os.ReadFile(filepath.Join(DiskRoot, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return bundled.ReadFile(rel)
}
