// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLFileLoader loads YAML configuration from a file.
// The location of YAML content based file is given as parameter.
// Nested mappings are flattened to "parent.child" keys.
func YAMLFileLoader(filePath string) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return YAMLReaderLoader(f).Load()
	})
}

// YAMLReaderLoader loads YAML configuration from an [io.Reader].
func YAMLReaderLoader(reader io.Reader) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		if seekReader, ok := reader.(io.Seeker); ok {
			_, _ = seekReader.Seek(0, io.SeekStart) // move to the beginning in case of a re-load needed.
		}
		var doc map[string]any
		dec := yaml.NewDecoder(reader)
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}

		return flattenConfigMap(doc), nil
	})
}
