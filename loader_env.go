// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

// EnvLoader loads configuration from OS's ENV.
func EnvLoader() Loader {
	return EnvironLoader(OS)
}

// EnvironLoader loads configuration from the given environment accessor.
// Pass OS to read the real process environment.
func EnvironLoader(env Environ) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		envs := env.Environ()

		configMap := make(map[string]string, len(envs))
		const kvSeparator = '='
		for _, entry := range envs {
			for i := 0; i < len(entry); i++ {
				if entry[i] == kvSeparator {
					configMap[entry[:i]] = entry[i+1:]

					break
				}
			}
		}

		return configMap, nil
	})
}
