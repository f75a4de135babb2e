// Package config loads stash build manifests from YAML.
package config

import (
	"os"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*FileManifestLoader)(nil)

// FileManifestLoader implements ports.ManifestLoader using a YAML file.
type FileManifestLoader struct{}

// NewFileManifestLoader creates a new FileManifestLoader.
func NewFileManifestLoader() *FileManifestLoader {
	return &FileManifestLoader{}
}

// Stashfile represents the structure of a stash.yaml build manifest. It
// declares the already resolved inputs of one identity computation; stash
// does not resolve dependencies itself.
type Stashfile struct {
	Version  string            `yaml:"version"`
	Settings map[string]string `yaml:"settings"`
	Options  map[string]string `yaml:"options"`
	Requires []string          `yaml:"requires"`
	Indirect []string          `yaml:"indirect"`
	// Relevant lists the requirement names that feed the identity hash.
	// When omitted entirely, every requirement is identity-relevant.
	Relevant []string `yaml:"relevant"`
}

// Load reads and parses the manifest at path into a domain.BuildInput.
func (l *FileManifestLoader) Load(path string) (*domain.BuildInput, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read build manifest"), "path", path)
	}

	var file Stashfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse build manifest"), "path", path)
	}

	requires, err := parseRefs(file.Requires)
	if err != nil {
		return nil, err
	}
	indirect, err := parseRefs(file.Indirect)
	if err != nil {
		return nil, err
	}

	settings := domain.NewSettingsValues()
	for key, value := range file.Settings {
		settings.Set(key, value)
	}
	options := domain.NewOptionsValues()
	for key, value := range file.Options {
		options.Set(key, value)
	}

	return &domain.BuildInput{
		Settings: settings,
		Options:  options,
		Requires: requires,
		Indirect: indirect,
		Relevant: domain.NewRelevanceFilter(file.Relevant),
	}, nil
}

func parseRefs(texts []string) ([]domain.ComponentRef, error) {
	refs := make([]domain.ComponentRef, len(texts))
	for i, text := range texts {
		ref, err := domain.ParseComponentRef(text)
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}
	return refs, nil
}
