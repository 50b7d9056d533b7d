// Package manifest reads the descriptor that names and labels a platform.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Manifest describes one platform.
type Manifest struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	LongName string   `json:"longname,omitempty" yaml:"longname,omitempty"`
	Version  string   `json:"version,omitempty" yaml:"version,omitempty"`
	Domains  []string `json:"domains,omitempty" yaml:"domains,omitempty" validate:"dive,hostname_rfc1123"`
	Docurl   string   `json:"docurl,omitempty" yaml:"docurl,omitempty" validate:"omitempty,url"`
}

var validate = validator.New()

// Load reads and validates file inside dir. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func Load(dir, file string) (*Manifest, error) {
	path := filepath.Join(dir, file)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read manifest")
	}

	var m Manifest
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, errorwrapper.NewError("failed to decode manifest '%s': %w", path, err)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, errorwrapper.NewError("invalid manifest '%s': %w", path, err)
	}

	return &m, nil
}

// Label returns the display name of a platform: the long name, else the
// short name, else fallback. A nil manifest yields fallback.
func Label(m *Manifest, fallback string) string {
	if m == nil {
		return fallback
	}
	if m.LongName != "" {
		return m.LongName
	}
	if m.Name != "" {
		return m.Name
	}
	return fallback
}
