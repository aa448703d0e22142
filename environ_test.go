// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret_test

import (
	"os"
	"testing"

	"github.com/actforgood/xsecret"
)

func TestMapEnviron(t *testing.T) {
	t.Parallel()

	t.Run("environ lists entries sorted", testMapEnvironListsEntries)
	t.Run("setenv stores a variable", testMapEnvironSetenv)
	t.Run("isolated from other instances", testMapEnvironIsolation)
}

func testMapEnvironListsEntries(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsecret.NewMapEnviron(map[string]string{
		"MAP_ENV_FOO":  "bar",
		"MAP_ENV_YEAR": "2022",
	})

	// act
	result := subject.Environ()

	// assert
	assertEqual(t, []string{"MAP_ENV_FOO=bar", "MAP_ENV_YEAR=2022"}, result)
}

func testMapEnvironSetenv(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsecret.NewMapEnviron(nil)

	// act
	err := subject.Setenv("MAP_ENV_FOO", "bar")

	// assert
	assertNil(t, err)
	assertEqual(t, "bar", subject.Getenv("MAP_ENV_FOO"))
	assertEqual(t, []string{"MAP_ENV_FOO=bar"}, subject.Environ())
}

func testMapEnvironIsolation(t *testing.T) {
	t.Parallel()

	// arrange
	vars := map[string]string{"MAP_ENV_FOO": "bar"}
	subject := xsecret.NewMapEnviron(vars)

	// act - mutate the source map after construction.
	vars["MAP_ENV_FOO"] = "baz"

	// assert
	assertEqual(t, "bar", subject.Getenv("MAP_ENV_FOO"))
}

func TestOS(t *testing.T) {
	// arrange
	const envName = "XSECRET_TEST_OS_ENVIRON"
	t.Setenv(envName, "initial")

	// act
	err := xsecret.OS.Setenv(envName, "bar")

	// assert
	assertNil(t, err)
	assertEqual(t, "bar", os.Getenv(envName))

	found := false
	for _, entry := range xsecret.OS.Environ() {
		if entry == envName+"=bar" {
			found = true

			break
		}
	}
	assertTrue(t, found)
}
