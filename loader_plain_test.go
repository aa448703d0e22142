// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret_test

import (
	"testing"

	"github.com/actforgood/xsecret"
)

func TestPlainLoader(t *testing.T) {
	t.Parallel()

	t.Run("success - given config map gets returned", testPlainLoaderSuccess)
	t.Run("success - safe-mutable config map", testPlainLoaderReturnsSafeMutableConfigMap)
}

func testPlainLoaderSuccess(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		configMap = map[string]string{
			"plain_foo":  "bar",
			"plain_year": "2022",
		}
		subject = xsecret.PlainLoader(configMap)
	)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, configMap, config)
}

func testPlainLoaderReturnsSafeMutableConfigMap(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		configMap = map[string]string{"plain_foo": "bar"}
		subject   = xsecret.PlainLoader(configMap)
	)

	// act - mutate the source map after construction.
	configMap["plain_foo"] = "baz"
	config1, err1 := subject.Load()

	// assert
	assertNil(t, err1)
	assertEqual(t, map[string]string{"plain_foo": "bar"}, config1)

	// act - mutate a returned map.
	config1["plain_foo"] = "baz"
	config2, err2 := subject.Load()

	// assert
	assertNil(t, err2)
	assertEqual(t, map[string]string{"plain_foo": "bar"}, config2)
}
