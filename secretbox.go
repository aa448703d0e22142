// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/actforgood/xlog"
	"github.com/spf13/cast"
)

// DefaultPrecedence is the built-in precedence list used when a Box is
// constructed with BoxWithAutoLoad: current process env first, then the
// ".env" file of the working directory overriding it.
var DefaultPrecedence = []string{"environ", "envfile"}

// KeyNotFoundError is an error returned by Box accessors
// when a key is not present in the store and no default was supplied.
type KeyNotFoundError struct {
	key string // the missing key
}

// NewKeyNotFoundError instantiates a new KeyNotFoundError.
// The missing key must be provided.
func NewKeyNotFoundError(key string) KeyNotFoundError {
	return KeyNotFoundError{key: key}
}

// Error returns string representation of the KeyNotFoundError.
// It implements standard go error interface.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf(`key "%s" not found`, e.key)
}

// ValueCastError is an error returned by Box typed accessors when a key's
// present value cannot be cast to the requested type.
// A supplied default does not suppress it: defaults cover only the
// "absent key" case, never a present but malformed value.
type ValueCastError struct {
	key   string // the key whose value could not be cast
	value string // the string representation of the offending value
	err   error  // the underlying cast error
}

// NewValueCastError instantiates a new ValueCastError.
func NewValueCastError(key, value string, err error) ValueCastError {
	return ValueCastError{key: key, value: value, err: err}
}

// Error returns string representation of the ValueCastError.
// It implements standard go error interface.
func (e ValueCastError) Error() string {
	return fmt.Sprintf(`value "%s" of key "%s" cannot be cast: %v`, e.value, e.key, e.err)
}

// Unwrap returns the underlying cast error.
func (e ValueCastError) Unwrap() error {
	return e.err
}

// Box holds configuration / secret values collected from loaders and
// provides typed access and write-through mutation upon them.
//
// Box is single-threaded by design: loads, reads and writes run to
// completion before returning, and no locking is provided. The only
// resource shared between Box instances is the environment accessor:
// a Set through one Box is visible to an "environ" load of another Box
// using the same Environ.
type Box struct {
	// values is the in-memory key value store.
	values map[string]string
	// env is the write-through environment side-channel.
	env Environ
	// logger logs diagnostic records.
	logger xlog.Logger
	// registry resolves loader names for LoadFrom.
	registry *Registry
	// autoLoad triggers one LoadFrom(DefaultPrecedence) at construction.
	autoLoad bool
	// debug triggers one diagnostic record at construction; observational only.
	debug bool
}

// NewBox instantiates a new Box object.
// An optional list of functions to configure the object can be provided.
// With BoxWithAutoLoad applied, the returned Box is already populated from
// the DefaultPrecedence sources; an error can only originate from that load.
func NewBox(opts ...BoxOption) (*Box, error) {
	box := &Box{
		values:   make(map[string]string),
		env:      OS,
		logger:   xlog.NopLogger{},
		registry: DefaultRegistry(),
	}

	// apply options, if any.
	for _, opt := range opts {
		opt(box)
	}

	if box.debug {
		box.logger.Debug(xlog.MessageKey, "debug flag passed")
	}

	if box.autoLoad {
		if err := box.LoadFrom(DefaultPrecedence); err != nil {
			return nil, err
		}
	}

	return box, nil
}

// LoadFrom resolves given loader names through the registry, in the order
// they appear, runs the resolved loaders and folds their merged result into
// the store, a later loader overwriting an earlier one on key conflict.
// Names not present in the registry are skipped, by design: a precedence
// list may reference loaders unavailable in a given deployment.
// Keys already in the store and not produced by this call are preserved.
// A loader's error makes the whole call fail, untranslated.
func (box *Box) LoadFrom(names []string, opts ...LoaderOption) error {
	// resolve with the box's environment accessor as default, callers can still override it.
	opts = append([]LoaderOption{LoaderWithEnviron(box.env)}, opts...)

	loaders := make([]Loader, 0, len(names))
	for _, name := range names {
		loader := box.registry.Resolve(name, opts...)
		if loader == nil {
			box.logger.Error(xlog.MessageKey, "unknown loader, skipping", "loader", name)

			continue
		}
		box.logger.Debug(xlog.MessageKey, "loading", "loader", name)
		loaders = append(loaders, loader)
	}

	return box.UseLoaders(loaders...)
}

// UseLoaders runs given loaders in the order they appear and folds their
// merged result into the store, a later loader overwriting an earlier one
// on key conflict. Keys already in the store and not produced by this call
// are preserved.
func (box *Box) UseLoaders(loaders ...Loader) error {
	configMap, err := NewMultiLoader(true, loaders...).Load()
	if err != nil {
		return err
	}
	box.update(configMap)

	return nil
}

// update upserts new values into the store: existing keys not present in
// newValues survive, colliding keys take newValues' value.
func (box *Box) update(newValues map[string]string) {
	for key, value := range newValues {
		box.values[key] = value
	}
}

// Values returns a copy of the stored key value map.
func (box *Box) Values() map[string]string {
	return maps.Clone(box.values)
}

// Get returns the value stored under given key.
// The second parameter is optional and represents a default value returned
// in case the key is not present. With no default, a missing key makes Get
// return a KeyNotFoundError.
func (box *Box) Get(key string, def ...string) (string, error) {
	value, found := box.values[key]
	if !found {
		if len(def) > 0 {
			return def[0], nil
		}

		return "", NewKeyNotFoundError(key)
	}

	return value, nil
}

// GetInt returns the value stored under given key, parsed as a base-10 int
// ("010" is ten, "0x2A" is malformed, not hex forty-two).
// The second parameter is optional and represents a default value returned,
// as is, in case the key is not present - a default bypasses parsing
// entirely and thus never suppresses a ValueCastError: a present value that
// is not integer-parseable makes GetInt fail even with a default supplied.
// With no default, a missing key makes GetInt return a KeyNotFoundError.
func (box *Box) GetInt(key string, def ...int) (int, error) {
	value, found := box.values[key]
	if !found {
		if len(def) > 0 {
			return def[0], nil
		}

		return 0, NewKeyNotFoundError(key)
	}

	intValue, err := strconv.ParseInt(value, 10, 0)
	if err != nil {
		return 0, NewValueCastError(key, value, err)
	}

	return int(intValue), nil
}

// GetList returns the value stored under given key, split on given delimiter.
// Split segments are not trimmed of whitespace; a value not containing the
// delimiter yields a single-element list holding the whole value.
// The third parameter is optional and represents a default list returned,
// as is, in case the key is not present. With no default, a missing key
// makes GetList return a KeyNotFoundError.
func (box *Box) GetList(key, delimiter string, def ...[]string) ([]string, error) {
	value, found := box.values[key]
	if !found {
		if len(def) > 0 {
			return def[0], nil
		}

		return nil, NewKeyNotFoundError(key)
	}

	return strings.Split(value, delimiter), nil
}

// Set stores given value under given key and writes it through to the
// environment accessor, so a subsequent "environ" load (of this Box or of
// any other sharing the accessor) sees it.
// A non-string value is stringified (Set(key, 42) stores "42"); a value
// with no string representation makes Set return a ValueCastError.
func (box *Box) Set(key string, value any) error {
	strValue, err := cast.ToStringE(value)
	if err != nil {
		return NewValueCastError(key, fmt.Sprintf("%v", value), err)
	}

	box.values[key] = strValue

	return box.env.Setenv(key, strValue)
}

// BoxOption defines optional function for configuring a Box object.
type BoxOption func(*Box)

// BoxWithAutoLoad triggers one LoadFrom(DefaultPrecedence) at construction,
// so the Box is populated without an explicit load call.
//
// By default, a Box starts empty.
func BoxWithAutoLoad() BoxOption {
	return func(box *Box) {
		box.autoLoad = true
	}
}

// BoxWithDebugFlag makes the Box emit one diagnostic record on its logger
// at construction. It has no effect upon loading or access.
func BoxWithDebugFlag() BoxOption {
	return func(box *Box) {
		box.debug = true
	}
}

// BoxWithEnviron sets the environment accessor the Box writes through and
// its "environ" loads read from.
//
// By default, the real process environment (OS) is used.
func BoxWithEnviron(env Environ) BoxOption {
	return func(box *Box) {
		box.env = env
	}
}

// BoxWithLogger sets the logger diagnostic records are emitted on.
//
// By default, a xlog.NopLogger is used.
func BoxWithLogger(logger xlog.Logger) BoxOption {
	return func(box *Box) {
		box.logger = logger
	}
}

// BoxWithRegistry sets the registry LoadFrom resolves loader names through.
//
// By default, DefaultRegistry() is used.
func BoxWithRegistry(registry *Registry) BoxOption {
	return func(box *Box) {
		box.registry = registry
	}
}
