package sprite

import (
	"fmt"
	"strings"

	"github.com/ineffably/moxijs/internal/colour"
)

// Name is a frame filename decomposed for description building.
type Name struct {
	// Lower is the lowercase filename with its extension stripped.
	Lower string
	// Base is the parsed first underscore-delimited segment.
	Base Base
	// Tokens are the remaining segments plus a non-empty base
	// remainder, each split into letters and trailing digits.
	Tokens []Token
}

// ParseName decomposes a frame filename: the extension is stripped, the
// name split on underscores, the first part parsed as the base segment
// and the rest (plus any base remainder) collected as extra tokens.
func ParseName(filename string) Name {
	frameName := filename
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		frameName = filename[:i]
	}

	parts := strings.Split(frameName, "_")
	base := ParseBase(parts[0])

	var segments []string
	if base.Remainder != "" {
		segments = append(segments, base.Remainder)
	}
	segments = append(segments, parts[1:]...)

	tokens := make([]Token, 0, len(segments))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		tokens = append(tokens, SplitToken(segment))
	}

	return Name{Lower: strings.ToLower(frameName), Base: base, Tokens: tokens}
}

// TokenLetters returns the letter segments of the extra tokens, in
// order, for lexical colour matching.
func (n Name) TokenLetters() []string {
	letters := make([]string, len(n.Tokens))
	for i, token := range n.Tokens {
		letters[i] = token.Letters
	}
	return letters
}

// Describe builds the catalog description for a frame from its
// filename and averaged region colour. Each recognised base type has
// its own fragment rule; empty fragments are dropped and the result is
// trimmed.
func Describe(filename string, sample colour.Sample) string {
	name := ParseName(filename)
	colourName := colour.Detect(name.Lower, name.TokenLetters(), sample)
	variant := NormalizeVariant(name.Base.Variant)

	var description string

	switch name.Base.Key {
	case "beam":
		description = join(colourName, "beam", vTag(variant))
	case "beamlong":
		description = join(colourName, "long beam", vTag(variant))
	case "bold":
		description = fmt.Sprintf("%s bold glyph", colourName)
	case "bolt":
		description = fmt.Sprintf("%s bolt pickup", colourName)
	case "button":
		description = fmt.Sprintf("%s ui button", colourName)
	case "cockpit":
		description = join(colourName, "cockpit", vTag(variant))
	case "cursor":
		description = fmt.Sprintf("%s ui cursor", colourName)
	case "enemy":
		description = join(colourName, "enemy fighter", vTag(variant))
	case "engine":
		description = join(colourName, "engine pod", vTag(variant))
	case "fire":
		description = join(colourName, "thruster flame", vTag(variant))
	case "gun":
		description = join(colourName, "gun icon", vTag(variant))
	case "laser":
		description = join(colourName, "laser bolt", vTag(variant))
	case "meteor":
		size := name.sizeToken()
		order := name.sizeOrder(variant)
		description = join(colourName, size, "meteor", vTag(order))
	case "numeral":
		numeral := name.remainderOr(variant)
		description = fmt.Sprintf("%s digit %s", colourName, numeral)
	case "pill":
		description = fmt.Sprintf("%s pill powerup", colourName)
	case "playerlife":
		description = join(colourName, "life icon", vTag(variant))
	case "playership":
		damage := name.damageLevel()
		damageTag := ""
		if damage != "" {
			damageTag = "dmg" + damage
		}
		description = join(colourName, "player ship", vTag(variant), damageTag)
	case "powerup":
		flavor := name.flavorToken("orb")
		description = fmt.Sprintf("%s %s powerup", colourName, flavor)
	case "scratch":
		description = join(colourName, "hull scratch", vTag(variant))
	case "shield":
		level := NormalizeVariant(variant)
		description = join(colourName, "shield icon", vTag(level))
	case "speed":
		description = fmt.Sprintf("%s speed icon", colourName)
	case "star":
		description = join(colourName, "star icon", vTag(name.remainderOr(variant)))
	case "things":
		flavor := name.Base.Remainder
		if flavor == "" {
			flavor = name.nonColourToken()
		}
		if flavor == "" {
			flavor = "badge"
		}
		description = join(colourName, flavor, "icon")
	case "turretbase":
		description = join(colourName, name.sizeToken(), "turret base")
	case "ufo":
		description = fmt.Sprintf("%s ufo saucer", colourName)
	case "wing":
		description = join(colourName, "wing segment", vTag(variant))
	default:
		label, ok := baseTypeLabels[name.Base.Key]
		if !ok {
			label = strings.ReplaceAll(name.Base.Key, "playership", "player ship")
		}
		description = join(colourName, strings.TrimSpace(label), vTag(variant))
	}

	return strings.TrimSpace(description)
}

// sizeToken returns the first extra token that is a known size word.
func (n Name) sizeToken() string {
	for _, token := range n.Tokens {
		if size, ok := sizeTokens[token.Letters]; ok {
			return size
		}
	}
	return ""
}

// sizeOrder returns the normalized digits attached to the first size
// token that carries any, falling back to the base variant.
func (n Name) sizeOrder(fallback string) string {
	for _, token := range n.Tokens {
		if _, ok := sizeTokens[token.Letters]; ok && token.Digits != "" {
			return NormalizeVariant(token.Digits)
		}
	}
	return fallback
}

// damageLevel returns the normalized digits of a token literally named
// "damage", or empty when none exists.
func (n Name) damageLevel() string {
	for _, token := range n.Tokens {
		if token.Letters == "damage" {
			return NormalizeVariant(token.Digits)
		}
	}
	return ""
}

// flavorToken returns the first non-empty token letter segment that is
// not itself a colour word.
func (n Name) flavorToken(fallback string) string {
	for _, token := range n.Tokens {
		if token.Letters != "" && !colour.IsColourToken(token.Letters) {
			return token.Letters
		}
	}
	return fallback
}

// nonColourToken returns the letter segment of the first token that is
// not a colour word. A numeral-only token yields an empty segment and
// still counts as the first match.
func (n Name) nonColourToken() string {
	for _, token := range n.Tokens {
		if !colour.IsColourToken(token.Letters) {
			return token.Letters
		}
	}
	return ""
}

// remainderOr returns the upper-cased base remainder when present,
// otherwise the given normalized variant.
func (n Name) remainderOr(variant string) string {
	if n.Base.Remainder != "" {
		return strings.ToUpper(n.Base.Remainder)
	}
	return variant
}

// vTag prefixes a non-empty variant with "v".
func vTag(variant string) string {
	if variant == "" {
		return ""
	}
	return "v" + variant
}

// join space-joins the non-empty fragments.
func join(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if fragment != "" {
			parts = append(parts, fragment)
		}
	}
	return strings.Join(parts, " ")
}
