// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

// Package xsecret collects configuration and secret values from multiple
// named sources (OS env, env / json / yaml / toml / ini / properties files)
// into a single in-memory store, applying a caller-defined precedence order
// (a later source overwrites an earlier one on key conflict), and exposes
// typed read/write access on top of that store.
package xsecret
