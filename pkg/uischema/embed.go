package uischema

import (
	"embed"
	"io/fs"
)

// DefaultFile is the name of the bundled document inside EmbeddedFS.
const DefaultFile = "signup.yaml"

//go:embed ui/schema/*
var embeddedSchema embed.FS

// EmbeddedFS returns the bundled UI schema assets.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "ui/schema")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default loads the bundled document.
func Default() (Document, error) {
	return LoadFS(EmbeddedFS(), DefaultFile)
}
