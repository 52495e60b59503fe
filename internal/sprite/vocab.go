// Package sprite parses sprite frame filenames and builds the
// human-readable descriptions stored in the atlas document.
package sprite

import "sort"

// baseTypeLabels maps each recognised base-type key to its fixed
// catalog label. The key set also drives base-segment matching.
var baseTypeLabels = map[string]string{
	"beam":       "beam",
	"beamlong":   "long beam",
	"bold":       "bold glyph",
	"bolt":       "bolt pickup",
	"button":     "ui button",
	"cockpit":    "cockpit module",
	"cursor":     "ui cursor",
	"enemy":      "enemy fighter",
	"engine":     "engine pod",
	"fire":       "thruster flame",
	"gun":        "gun icon",
	"laser":      "laser bolt",
	"meteor":     "meteor",
	"numeral":    "digit",
	"pill":       "pill powerup",
	"playerlife": "life icon",
	"playership": "player ship",
	"powerup":    "powerup",
	"scratch":    "hull scratch",
	"shield":     "shield icon",
	"speed":      "speed icon",
	"star":       "star icon",
	"things":     "badge icon",
	"turretbase": "turret base",
	"ufo":        "ufo saucer",
	"wing":       "wing segment",
}

// sizeTokens is the fixed vocabulary of size words recognised among a
// frame's extra tokens (meteor and turret base rules).
var sizeTokens = map[string]string{
	"big":   "big",
	"med":   "med",
	"small": "small",
	"tiny":  "tiny",
	"long":  "long",
}

// baseKeysByLength holds the base-type keys sorted longest first, so
// that base-segment matching prefers "beamlong" over "beam".
var baseKeysByLength = sortedBaseKeys()

func sortedBaseKeys() []string {
	keys := make([]string, 0, len(baseTypeLabels))
	for key := range baseTypeLabels {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
