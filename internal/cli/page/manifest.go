package page

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/halbind/halbind/faults"
)

// Manifest is the YAML description of one page: the entity it shows and the
// placeholder names with the document elements bound to each.
type Manifest struct {
	Page struct {
		Type string `yaml:"type"`
		ID   string `yaml:"id"`
	} `yaml:"page"`
	Placeholders map[string][]string `yaml:"placeholders"`
}

func loadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, faults.NewTypedError(faults.ValidationError, fmt.Sprintf("failed to read manifest %q", path), err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, faults.NewTypedError(faults.ValidationError, fmt.Sprintf("manifest %q is not valid YAML", path), err)
	}
	if len(manifest.Placeholders) == 0 {
		return Manifest{}, faults.NewTypedError(faults.ValidationError, fmt.Sprintf("manifest %q declares no placeholders", path), nil)
	}
	return manifest, nil
}
