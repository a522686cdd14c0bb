package static

import (
	"embed"
	"io/fs"
)

//go:embed index.html css/* js/*
var embedded embed.FS

func Files() fs.FS {
	return embedded
}
