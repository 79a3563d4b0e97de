package levels

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.tmx
var LevelsFS embed.FS

// FS returns the filesystem levels are read from. A non-empty dir on disk
// takes precedence over the embedded levels.
func FS(dir string) fs.FS {
	if dir == "" {
		return LevelsFS
	}
	return os.DirFS(dir)
}
