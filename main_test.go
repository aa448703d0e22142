// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret_test

import (
	"reflect"
	"testing"
)

// assertEqual checks that expected and actual values are deeply equal.
func assertEqual(t *testing.T, expected, actual any) bool {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		return true
	}
	t.Errorf("expected [%+v], but got [%+v]", expected, actual)

	return false
}

// assertNil checks that actual value is nil.
func assertNil(t *testing.T, actual any) bool {
	t.Helper()
	if isNil(actual) {
		return true
	}
	t.Errorf("expected nil, but got [%+v]", actual)

	return false
}

// assertNotNil checks that actual value is not nil.
func assertNotNil(t *testing.T, actual any) bool {
	t.Helper()
	if !isNil(actual) {
		return true
	}
	t.Error("expected not nil, but got nil")

	return false
}

// assertTrue checks that actual value is true.
func assertTrue(t *testing.T, actual bool) bool {
	t.Helper()
	if actual {
		return true
	}
	t.Error("expected true, but got false")

	return false
}

// requireNil checks that actual value is nil, stopping the test otherwise.
func requireNil(t *testing.T, actual any) {
	t.Helper()
	if !isNil(actual) {
		t.Fatalf("expected nil, but got [%+v]", actual)
	}
}

// isNil covers both plain nil and typed nil values.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	refVal := reflect.ValueOf(value)
	switch refVal.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return refVal.IsNil()
	default:
		return false
	}
}
