package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*
var TemplateAssets embed.FS

// TemplateFS returns the embedded template filesystem rooted at templates/.
func TemplateFS() fs.FS {
	templates, err := fs.Sub(TemplateAssets, "templates")
	if err != nil {
		panic(err)
	}
	return templates
}
