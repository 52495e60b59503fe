package colour

import "strings"

// colourTokens is the fixed vocabulary of colour words recognised in
// frame filenames, in match-priority order.
var colourTokens = []string{
	"bronze",
	"silver",
	"yellow",
	"orange",
	"purple",
	"green",
	"black",
	"white",
	"brown",
	"grey",
	"gray",
	"blue",
	"red",
	"teal",
	"gold",
}

// IsColourToken reports whether the given lowercase word is one of the
// recognised colour tokens.
func IsColourToken(word string) bool {
	for _, token := range colourTokens {
		if word == token {
			return true
		}
	}
	return false
}

// Detect resolves a colour name for a frame. The lowercase filename and
// then each token's letter segment are scanned for an explicit colour
// word; an explicit token always wins over the sampled pixel colour,
// since the artist's naming is authoritative. Only when no token
// matches is the averaged sample classified perceptually. Light/Dark
// prefixes are abbreviated in the result ("Lt Grey", "Dk Grey").
func Detect(nameLower string, tokenLetters []string, sample Sample) string {
	if name, ok := lexicalMatch(nameLower, tokenLetters); ok {
		return abbreviate(name)
	}
	return abbreviate(Classify(sample))
}

// lexicalMatch scans for colour tokens by substring, filename first.
func lexicalMatch(nameLower string, tokenLetters []string) (string, bool) {
	for _, token := range colourTokens {
		if strings.Contains(nameLower, token) {
			return titleToken(token), true
		}
	}
	for _, letters := range tokenLetters {
		for _, token := range colourTokens {
			if strings.Contains(letters, token) {
				return titleToken(token), true
			}
		}
	}
	return "", false
}

// Classify maps an averaged sample to a colour name using HSV
// thresholds. Near-greyscale samples are bucketed by brightness,
// everything else by hue.
func Classify(sample Sample) string {
	if sample.IsBlack() {
		return "Black"
	}

	h, s, v := rgbToHSV(sample.R/255.0, sample.G/255.0, sample.B/255.0)

	if s < 0.22 {
		switch {
		case v > 0.85:
			return "White"
		case v > 0.6:
			return "Light Grey"
		case v > 0.35:
			return "Grey"
		default:
			return "Dark Grey"
		}
	}

	switch {
	case h < 20 || h >= 340:
		return "Red"
	case h < 40:
		if v > 0.45 {
			return "Orange"
		}
		return "Brown"
	case h < 65:
		return "Yellow"
	case h < 160:
		return "Green"
	case h < 210:
		return "Cyan"
	case h < 255:
		return "Blue"
	case h < 310:
		return "Purple"
	default:
		return "Magenta"
	}
}

// abbreviate shortens Light/Dark prefixes for compact catalog labels.
func abbreviate(name string) string {
	if strings.HasPrefix(name, "Light ") {
		return strings.Replace(name, "Light ", "Lt ", 1)
	}
	if strings.HasPrefix(name, "Dark ") {
		return strings.Replace(name, "Dark ", "Dk ", 1)
	}
	return name
}

// titleToken title-cases a matched colour token, normalising the
// spelling "gray" to "grey".
func titleToken(token string) string {
	token = strings.ReplaceAll(token, "gray", "grey")
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + token[1:]
}
