package data

import (
	"embed"
	"io/fs"
)

//go:embed data
var embedded embed.FS

// AuxiliaryDir is the directory of non-partitioned lists.
const AuxiliaryDir = "other"

// FS returns the embedded store rooted at the locale partitions.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "data" is a constant.
		panic(err)
	}
	return sub
}
