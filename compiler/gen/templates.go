package gen

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

type (
	templates struct {
		FS fs.FS
	}
)

const (
	headerT  = "header"
	enumT    = "enum"
	messageT = "message"
	serviceT = "service"
)

//go:embed templates/*.go.tpl
var templateFS embed.FS

var genTemplates = &templates{FS: templateFS}

func (tr *templates) Read(name string) string {
	content, err := fs.ReadFile(tr.FS, path.Join("templates", name+".go.tpl"))
	if err != nil {
		panic(fmt.Sprintf("load template %s: %v", name, err))
	}

	return string(content)
}
