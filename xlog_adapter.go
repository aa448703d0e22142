// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsecret/blob/main/LICENSE.

package xsecret

import (
	"github.com/actforgood/xlog"
)

// LogLevelProvider provides a level read from a Box.
// It can be used to configure log level for a xlog.Logger.
// If the level configuration key is not found, the default provided level
// is returned.
func LogLevelProvider(
	box *Box,
	lvlKey string,
	defaultLvl string,
	levelLabels map[xlog.Level]string,
) xlog.LevelProvider {
	labeledLevels := flipLevelLabels(levelLabels)

	return func() xlog.Level {
		lvl, _ := box.Get(lvlKey, defaultLvl)

		return labeledLevels[lvl]
	}
}

// flipLevelLabels flips level labels map.
func flipLevelLabels(levelLabels map[xlog.Level]string) map[string]xlog.Level {
	flippedLevelLabels := make(map[string]xlog.Level, len(levelLabels))
	for lvl, label := range levelLabels {
		flippedLevelLabels[label] = lvl
	}

	return flippedLevelLabels
}
