// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

import (
	"io"
	"os"

	"github.com/joho/godotenv"
)

// EnvFileLoader loads "KEY=VALUE" configuration from a file.
// The location of env content based file is given as parameter.
// Blank lines and "#" comment lines are skipped, surrounding whitespace
// is trimmed from keys and values; a line matching none of these shapes
// makes Load return an error. A missing file is an error too - decorate
// with IgnoreErrorLoader (as the registry's default "envfile" entry does)
// if the file is optional.
func EnvFileLoader(filePath string) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return EnvFileReaderLoader(f).Load()
	})
}

// EnvFileReaderLoader loads "KEY=VALUE" configuration from an [io.Reader].
func EnvFileReaderLoader(reader io.Reader) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		if seekReader, ok := reader.(io.Seeker); ok {
			_, _ = seekReader.Seek(0, io.SeekStart) // move to the beginning in case of a re-load needed.
		}
		envs, err := godotenv.Parse(reader)
		if err != nil {
			return nil, err
		}

		return envs, nil
	})
}
