// Package yaml provides YAML codecs for catalogs and generator configs.
package yaml

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/doccheck"
	"github.com/fwojciec/doccheck/sphinx"
)

// LoadCatalog reads and validates a catalog from a YAML file.
func LoadCatalog(path string) (*doccheck.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, doccheck.Errorf(doccheck.ENOTFOUND, "catalog file %q not found", path)
		}
		return nil, err
	}

	var catalog doccheck.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, doccheck.Errorf(doccheck.EINVALID, "catalog file %q: %s", path, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// MarshalCatalog renders a catalog as YAML.
func MarshalCatalog(catalog *doccheck.Catalog) ([]byte, error) {
	return yaml.Marshal(catalog)
}

// LoadConfig reads and validates a generator config from a YAML file.
func LoadConfig(path string) (*sphinx.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, doccheck.Errorf(doccheck.ENOTFOUND, "config file %q not found", path)
		}
		return nil, err
	}

	var cfg sphinx.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, doccheck.Errorf(doccheck.EINVALID, "config file %q: %s", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MarshalConfig renders a generator config as YAML.
func MarshalConfig(cfg *sphinx.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
