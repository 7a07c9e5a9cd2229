// Package manifest loads the package_urls document that tells xpkg which
// artifact to install on which platform.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"xpkg/pkg/platform"
)

// Entry describes one package ecosystem: the native package name and the
// download URL per architecture key.
type Entry struct {
	Name string
	URLs map[platform.ArchKey]string
}

// Manifest is the caller-supplied desired state for one package.
//
// Validation is deliberately lazy: a manifest that lacks an entry for
// some platform is fine to load, and only becomes an error if a run on
// that platform actually needs the missing field.
type Manifest struct {
	Packages map[platform.PackageType]Entry

	// Installed is the desired state. Defaults to true.
	Installed bool
}

// document mirrors the YAML layout before typing. Each package_urls
// entry is a flat mapping holding "name" plus one URL per arch key.
type document struct {
	PackageURLs map[string]map[string]string `yaml:"package_urls"`
	Installed   *bool                        `yaml:"installed"`
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest YAML. Package types other than deb/rpm/apk are
// skipped; unrecognized arch keys are kept verbatim so lookups simply
// miss instead of failing.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	m := &Manifest{
		Packages:  make(map[platform.PackageType]Entry),
		Installed: true,
	}
	if doc.Installed != nil {
		m.Installed = *doc.Installed
	}

	for typeKey, fields := range doc.PackageURLs {
		ptype := platform.PackageType(typeKey)
		switch ptype {
		case platform.TypeDeb, platform.TypeRpm, platform.TypeApk:
		default:
			continue
		}

		entry := Entry{URLs: make(map[platform.ArchKey]string)}
		for key, value := range fields {
			if key == "name" {
				entry.Name = value
				continue
			}
			entry.URLs[platform.ArchKey(key)] = value
		}
		m.Packages[ptype] = entry
	}

	return m, nil
}

// Entry returns the entry for a package type, if the manifest has one.
func (m *Manifest) Entry(ptype platform.PackageType) (Entry, bool) {
	e, ok := m.Packages[ptype]
	return e, ok
}
