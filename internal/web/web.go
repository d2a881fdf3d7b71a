package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"pijat_jogja/internal/utils"
)

//go:embed templates/*.html
var files embed.FS

// FuncMap is available to every page template
var FuncMap = template.FuncMap{
	"waLink":      utils.WhatsAppLink,
	"packageLink": utils.PackageOrderLink,
	"year":        func() int { return time.Now().Year() },
	"inc":         func(i int) int { return i + 1 },
}

// Templates parses the embedded page templates; each is addressed by its file name.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
