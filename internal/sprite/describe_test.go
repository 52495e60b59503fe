package sprite

import (
	"testing"

	"github.com/ineffably/moxijs/internal/colour"
)

// Representative samples for the perceptual classifier paths.
var (
	sampleGrey  = colour.Sample{R: 128, G: 128, B: 128} // value 0.5, no saturation
	sampleBlue  = colour.Sample{R: 40, G: 80, B: 180}   // hue ~223
	sampleGreen = colour.Sample{R: 40, G: 200, B: 60}   // hue ~128
	sampleDark  = colour.Sample{R: 50, G: 50, B: 50}    // value ~0.2
	sampleBlack = colour.Sample{}                       // no opaque pixels
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		sample   colour.Sample
		want     string
	}{
		{
			name:     "lexical colour beats sampled colour",
			filename: "laserRed03.png",
			sample:   sampleGreen,
			want:     "Red laser bolt v3",
		},
		{
			name:     "player ship with damage token",
			filename: "playership3_damage2.png",
			sample:   sampleBlue,
			want:     "Blue player ship v3 dmg2",
		},
		{
			name:     "player ship without damage",
			filename: "playership1.png",
			sample:   sampleBlue,
			want:     "Blue player ship v1",
		},
		{
			name:     "meteor size token carrying digits",
			filename: "meteor_big7.png",
			sample:   sampleGrey,
			want:     "Grey big meteor v7",
		},
		{
			name:     "meteor order from base variant",
			filename: "meteorBig2.png",
			sample:   sampleGrey,
			want:     "Grey big meteor v2",
		},
		{
			name:     "meteor with detached digits gets no order",
			filename: "meteorBig_07.png",
			sample:   sampleGrey,
			want:     "Grey big meteor",
		},
		{
			name:     "numeral glyph from remainder",
			filename: "numeralX.png",
			sample:   sampleGrey,
			want:     "Grey digit X",
		},
		{
			name:     "numeral digit from variant",
			filename: "numeral5.png",
			sample:   sampleGrey,
			want:     "Grey digit 5",
		},
		{
			name:     "powerup flavour defaults to orb",
			filename: "powerup_blue.png",
			sample:   sampleGrey,
			want:     "Blue orb powerup",
		},
		{
			name:     "powerup flavour from remainder token",
			filename: "powerupShield2_red.png",
			sample:   sampleGrey,
			want:     "Red shield powerup",
		},
		{
			name:     "things falls back to badge",
			filename: "things_gold.png",
			sample:   sampleGrey,
			want:     "Gold badge icon",
		},
		{
			name:     "turret base with size token",
			filename: "turretBase_big.png",
			sample:   sampleGrey,
			want:     "Grey big turret base",
		},
		{
			name:     "star suffix from remainder",
			filename: "starGold.png",
			sample:   sampleGrey,
			want:     "Gold star icon vGOLD",
		},
		{
			name:     "shield variant",
			filename: "shield2.png",
			sample:   sampleGrey,
			want:     "Grey shield icon v2",
		},
		{
			name:     "longest base key match",
			filename: "beamLong2.png",
			sample:   sampleGreen,
			want:     "Green long beam v2",
		},
		{
			name:     "ufo with colour remainder",
			filename: "ufoRed.png",
			sample:   sampleGrey,
			want:     "Red ufo saucer",
		},
		{
			name:     "life icon",
			filename: "playerLife2_red.png",
			sample:   sampleGrey,
			want:     "Red life icon v2",
		},
		{
			name:     "dark grey abbreviated",
			filename: "wing3.png",
			sample:   sampleDark,
			want:     "Dk Grey wing segment v3",
		},
		{
			name:     "transparent region reads as black",
			filename: "cockpit4.png",
			sample:   sampleBlack,
			want:     "Black cockpit v4",
		},
		{
			name:     "unknown base type uses raw text",
			filename: "asteroid7.png",
			sample:   sampleGrey,
			want:     "Grey asteroid v7",
		},
		{
			name:     "leading zero variant normalized",
			filename: "enemyBlack007.png",
			sample:   sampleGrey,
			want:     "Black enemy fighter v7",
		},
		{
			name:     "gray spelling normalized",
			filename: "buttonGray.png",
			sample:   sampleBlue,
			want:     "Grey ui button",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.filename, tt.sample); got != tt.want {
				t.Errorf("Describe(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDescribeDeterministic(t *testing.T) {
	// The builder is a pure function of filename and sample, so two
	// passes over the same input must agree.
	first := Describe("playership3_damage2.png", sampleBlue)
	second := Describe("playership3_damage2.png", sampleBlue)
	if first != second {
		t.Errorf("Describe not deterministic: %q vs %q", first, second)
	}
}
