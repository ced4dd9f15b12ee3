package mesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a mesh payload from a JSON or YAML file and builds a
// solid object named after the file.
func LoadFile(path string) (*Object, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}

	// JSON is a subset of YAML, so one decoder covers both formats.
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse mesh %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromData(name, d)
}
