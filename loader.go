// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

// Loader is responsible for loading a configuration
// key value map from one source.
type Loader interface {
	// Load returns a configuration key value map or an error.
	//
	// It's Loader's responsibility to return a map that is safe for
	// an eventual later mutation (a loader's returned map gets folded
	// into a store and may be modified afterwards, so a Loader should
	// return a disposable config map).
	//
	// Load must be idempotent: absent external source changes, repeated
	// calls return an equivalent map. A recoverable "source not present"
	// condition is not an error (see IgnoreErrorLoader); fatal conditions
	// are returned untranslated.
	Load() (map[string]string, error)
}

// The LoaderFunc type is an adapter to allow the use of
// ordinary functions as Loaders. If fn is a function
// with the appropriate signature, LoaderFunc(fn) is a
// Loader that calls fn.
type LoaderFunc func() (map[string]string, error)

// Load calls fn().
func (fn LoaderFunc) Load() (map[string]string, error) {
	return fn()
}
