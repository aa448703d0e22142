// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

import (
	"os"
	"sort"
)

// Environ abstracts the process-wide environment.
// It makes the environment side-channel shared by EnvironLoader and
// Box.Set explicit and injectable: production code uses OS, tests can
// use an isolated MapEnviron.
type Environ interface {
	// Environ returns all variables under the "key=value" form.
	Environ() []string

	// Setenv sets the value of the variable named by the key.
	Setenv(key, value string) error
}

// OS is the Environ backed by the real process environment.
var OS Environ = osEnviron{}

type osEnviron struct{}

func (osEnviron) Environ() []string {
	return os.Environ()
}

func (osEnviron) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnviron is an in-memory Environ.
// It can be used in tests as an isolated substitute for OS.
type MapEnviron struct {
	vars map[string]string
}

// NewMapEnviron instantiates a new MapEnviron, optionally
// pre-populated with given variables.
func NewMapEnviron(vars map[string]string) *MapEnviron {
	env := &MapEnviron{vars: make(map[string]string, len(vars))}
	for key, value := range vars {
		env.vars[key] = value
	}

	return env
}

// Environ returns all variables under the "key=value" form,
// sorted by their whole "key=value" entry, for deterministic listing.
func (env *MapEnviron) Environ() []string {
	environ := make([]string, 0, len(env.vars))
	for key, value := range env.vars {
		environ = append(environ, key+"="+value)
	}
	sort.Strings(environ)

	return environ
}

// Setenv sets the value of the variable named by the key.
func (env *MapEnviron) Setenv(key, value string) error {
	env.vars[key] = value

	return nil
}

// Getenv returns the value of the variable named by the key,
// or "" if it is not set.
func (env *MapEnviron) Getenv(key string) string {
	return env.vars[key]
}
