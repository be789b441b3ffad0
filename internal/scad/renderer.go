// Where: internal/scad/renderer.go
// What: Render the nametag OpenSCAD script from the embedded template.
// Why: Substitution is the only variable part; the geometry itself is fixed.
package scad

import (
	"bytes"
	"embed"
	"path"
	"strconv"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/scadworks/tagsmith/internal/config"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// RenderNametag fills the nametag template with the display name and the
// resolved parameter set. The name is inserted literally; a name containing
// a double quote yields a corrupted script, matching the documented contract.
// Rendering is deterministic: identical inputs produce identical bytes.
func RenderNametag(name string, params config.ParameterSet) (string, error) {
	tmpl, err := loadTemplate("nametag.scad.tmpl")
	if err != nil {
		return "", err
	}

	data := nametagTemplateData{
		Name:         name,
		Width:        formatParam(params["nametag_width"]),
		Height:       formatParam(params["nametag_height"]),
		Thickness:    formatParam(params["nametag_thickness"]),
		TextSize:     formatParam(params["text_size"]),
		TextHeight:   formatParam(params["text_height"]),
		RingWidth:    formatParam(params["ring_width"]),
		RingHeight:   formatParam(params["ring_height"]),
		HoleDiameter: formatParam(params["mounting_hole_diameter"]),
		CornerRadius: formatParam(params["corner_radius"]),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatParam renders a value the shortest way that round-trips, so whole
// numbers stay whole (80 not 80.000000) in the emitted script.
func formatParam(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		if cached, ok := value.(*template.Template); ok {
			return cached, nil
		}
	}
	pathName := "templates/" + name
	tmpl, err := template.New(path.Base(pathName)).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, pathName)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

type nametagTemplateData struct {
	Name         string
	Width        string
	Height       string
	Thickness    string
	TextSize     string
	TextHeight   string
	RingWidth    string
	RingHeight   string
	HoleDiameter string
	CornerRadius string
}
