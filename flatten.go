// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

import (
	"strings"

	"github.com/spf13/cast"
)

// flattenKeySeparator separates the levels of a nested key
// in its flat version (example: "mysql.host").
const flattenKeySeparator = "."

// flattenConfigMap reduces a decoded, possibly nested, document to the flat
// string key value map the store operates upon. Nested maps contribute their
// leaves under a composed "parent.child" key. Scalar leaves are stringified;
// slice leaves become a comma separated string (so they stay reachable
// through Box.GetList).
func flattenConfigMap(src map[string]any) map[string]string {
	flatConfigMap := make(map[string]string, len(src))
	flattenInto(0, "", src, flatConfigMap)

	return flatConfigMap
}

// flattenInto appends the flat version of currConfigMap's keys to finalConfigMap.
func flattenInto(
	lvl uint,
	prevKey string,
	currConfigMap map[string]any,
	finalConfigMap map[string]string,
) {
	for key, value := range currConfigMap {
		flatKey := getFlatKey(lvl, prevKey, key)
		switch val := value.(type) {
		case map[string]any:
			flattenInto(lvl+1, flatKey, val, finalConfigMap)
		case map[any]any:
			flattenInto(lvl+1, flatKey, cast.ToStringMap(val), finalConfigMap)
		case []any:
			items := make([]string, 0, len(val))
			for _, item := range val {
				items = append(items, cast.ToString(item))
			}
			finalConfigMap[flatKey] = strings.Join(items, ",")
		default:
			finalConfigMap[flatKey] = cast.ToString(val)
		}
	}
}

// getFlatKey returns a flat key representing the concatenation of
// previous (level) key and current (level) key.
func getFlatKey(lvl uint, prevKey, currKey string) string {
	if lvl > 0 {
		return prevKey + flattenKeySeparator + currKey
	}

	return currKey
}
