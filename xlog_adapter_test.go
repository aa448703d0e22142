// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret_test

import (
	"testing"

	"github.com/actforgood/xlog"
	"github.com/actforgood/xsecret"
)

func TestLogLevelProvider(t *testing.T) {
	t.Parallel()

	t.Run("level key is found", testLogLevelProviderWithExistingKey)
	t.Run("level key is not found - default", testLogLevelProviderWithDefaultLevel)
}

func testLogLevelProviderWithExistingKey(t *testing.T) {
	t.Parallel()

	// arrange
	box, err := xsecret.NewBox(xsecret.BoxWithEnviron(xsecret.NewMapEnviron(nil)))
	requireNil(t, err)
	requireNil(t, box.UseLoaders(xsecret.PlainLoader(map[string]string{
		"APP_LOG_LEVEL": "DEBUG",
		"foo":           "bar",
	})))

	var (
		loggerCommOpts = xlog.NewCommonOpts()
		subject        = xsecret.LogLevelProvider(
			box,
			"APP_LOG_LEVEL",
			"INFO",
			loggerCommOpts.LevelLabels,
		)
		expectedResult = xlog.LevelDebug
	)

	for i := 0; i < 10; i++ {
		// act
		result := subject()

		// assert
		assertEqual(t, expectedResult, result)
	}
}

func testLogLevelProviderWithDefaultLevel(t *testing.T) {
	t.Parallel()

	// arrange
	box, err := xsecret.NewBox(xsecret.BoxWithEnviron(xsecret.NewMapEnviron(nil)))
	requireNil(t, err)
	requireNil(t, box.UseLoaders(xsecret.PlainLoader(map[string]string{
		"foo": "bar",
	})))

	var (
		loggerCommOpts = xlog.NewCommonOpts()
		subject        = xsecret.LogLevelProvider(
			box,
			"APP_LOG_LEVEL",
			"INFO",
			loggerCommOpts.LevelLabels,
		)
		expectedResult = xlog.LevelInfo
	)

	for i := 0; i < 10; i++ {
		// act
		result := subject()

		// assert
		assertEqual(t, expectedResult, result)
	}
}
