// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

import (
	"io/fs"
	"sync"
)

// LoaderOptions holds the construction parameters a Registry factory
// can take into account when building a Loader.
type LoaderOptions struct {
	// FilePath is the source file of a file based loader.
	// If left empty, the factory's default path is used, and in that
	// defaulted case a missing file is tolerated (empty contribution).
	// An explicitly given path that cannot be read is a fatal error.
	FilePath string
	// Environ is the environment accessor an "environ" loader reads.
	// Defaults to OS.
	Environ Environ
	// ConfigMap is the explicit key value map of a "plain" loader.
	ConfigMap map[string]string
}

// LoaderOption defines optional function for configuring
// the Loader a Registry resolves.
type LoaderOption func(*LoaderOptions)

// LoaderWithFilePath sets the source file for a file based loader.
func LoaderWithFilePath(filePath string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FilePath = filePath
	}
}

// LoaderWithEnviron sets the environment accessor for an "environ" loader.
func LoaderWithEnviron(env Environ) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Environ = env
	}
}

// LoaderWithConfigMap sets the explicit key value map for a "plain" loader.
func LoaderWithConfigMap(configMap map[string]string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.ConfigMap = configMap
	}
}

// LoaderFactory builds a Loader from resolved options.
type LoaderFactory func(opts LoaderOptions) Loader

// Registry associates short names with Loader factories.
// An unknown name resolves to nil, not to an error: a precedence list may
// reference loaders that do not exist in a given deployment, and callers
// are expected to silently skip those entries.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]LoaderFactory
}

// NewRegistry instantiates a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]LoaderFactory),
	}
}

// Register associates a name with a Loader factory.
// An already registered name gets overwritten.
func (registry *Registry) Register(name string, factory LoaderFactory) {
	registry.mu.Lock()
	registry.factories[name] = factory
	registry.mu.Unlock()
}

// Resolve returns the Loader registered under given name,
// built with given options, or nil if the name is not registered.
func (registry *Registry) Resolve(name string, opts ...LoaderOption) Loader {
	registry.mu.RLock()
	factory, found := registry.factories[name]
	registry.mu.RUnlock()
	if !found {
		return nil
	}

	options := LoaderOptions{Environ: OS}
	for _, opt := range opts {
		opt(&options)
	}

	return factory(options)
}

// DefaultRegistry returns the process-wide Registry holding the built-in
// loaders: "environ", "envfile", "json", "yaml", "toml", "ini",
// "properties", "plain".
func DefaultRegistry() *Registry {
	return defaultRegistry
}

var defaultRegistry = newBuiltinRegistry()

func newBuiltinRegistry() *Registry {
	registry := NewRegistry()
	registry.Register("environ", func(opts LoaderOptions) Loader {
		return EnvironLoader(opts.Environ)
	})
	registry.Register("envfile", fileBackedFactory(".env", EnvFileLoader))
	registry.Register("json", fileBackedFactory("config.json", JSONFileLoader))
	registry.Register("yaml", fileBackedFactory("config.yaml", YAMLFileLoader))
	registry.Register("toml", fileBackedFactory("config.toml", TOMLFileLoader))
	registry.Register("ini", fileBackedFactory("config.ini", func(filePath string) Loader {
		return NewIniFileLoader(filePath)
	}))
	registry.Register("properties", fileBackedFactory("config.properties", PropertiesFileLoader))
	registry.Register("plain", func(opts LoaderOptions) Loader {
		return PlainLoader(opts.ConfigMap)
	})

	return registry
}

// fileBackedFactory makes a LoaderFactory for a file based loader.
// With no explicit path, defaultPath is used and its absence is tolerated;
// an explicitly provided path remains fatal when unreadable.
func fileBackedFactory(defaultPath string, newLoader func(filePath string) Loader) LoaderFactory {
	return func(opts LoaderOptions) Loader {
		if opts.FilePath != "" {
			return newLoader(opts.FilePath)
		}

		return IgnoreErrorLoader(newLoader(defaultPath), fs.ErrNotExist)
	}
}
