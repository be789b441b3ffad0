// Where: internal/config/params.go
// What: Nametag geometry parameter set and compiled-in defaults.
// Why: Keep the parameter vocabulary centralized for the reader and renderer.
package config

// ParameterKeys lists every recognized geometry parameter, in the order the
// rendered script declares them.
var ParameterKeys = []string{
	"nametag_width",
	"nametag_height",
	"nametag_thickness",
	"text_size",
	"text_height",
	"ring_width",
	"ring_height",
	"mounting_hole_diameter",
	"corner_radius",
}

// ParameterSet maps a geometry parameter key to its value in millimeters.
// A resolved set always carries every key in ParameterKeys.
type ParameterSet map[string]float64

var defaultParameters = ParameterSet{
	"nametag_width":          80,
	"nametag_height":         30,
	"nametag_thickness":      3,
	"text_size":              8,
	"text_height":            1.5,
	"ring_width":             3,
	"ring_height":            1.2,
	"mounting_hole_diameter": 4,
	"corner_radius":          3,
}

// DefaultParameters returns a fresh copy of the compiled-in defaults.
func DefaultParameters() ParameterSet {
	return defaultParameters.Clone()
}

// Clone returns an independent copy of the set.
func (p ParameterSet) Clone() ParameterSet {
	out := make(ParameterSet, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// IsParameterKey reports whether key is one of the recognized parameters.
func IsParameterKey(key string) bool {
	_, ok := defaultParameters[key]
	return ok
}
