package messages

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads messages from JSON files in an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.json
//
// Example structure:
//
//	en/variables.json
//	en/connections.json
//	de/variables.json
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads messages from YAML files in an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.yaml or {lang}/{namespace}.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(c *Catalog, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		// Case-insensitive comparison handles .YAML and .yaml across systems.
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		// Language from the directory name, namespace from the filename.
		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var msgs map[string]any
		if err := unmarshal(data, &msgs); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		return c.ingest(lang, namespace, msgs)
	})
}
