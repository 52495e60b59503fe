package atlas

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

// testSheet builds an 8x4 sheet: the left half solid blue, the right
// half fully transparent.
func testSheet() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 80, B: 180, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{A: 0})
			}
		}
	}
	return img
}

func testDoc() *Document {
	return &Document{
		Frames: map[string]*Frame{
			"playership3_damage2.png": {Frame: &Rect{X: 0, Y: 0, W: 4, H: 4}},
			"cockpit4.png":            {Frame: &Rect{X: 4, Y: 0, W: 4, H: 4}},
		},
	}
}

func TestAnnotate(t *testing.T) {
	doc := testDoc()

	annotations, err := NewAnnotator(nil).Annotate(doc, testSheet())
	if err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}
	if len(annotations) != 2 {
		t.Fatalf("len(annotations) = %d, want 2", len(annotations))
	}

	// Frames are processed in filename order.
	if annotations[0].Filename != "cockpit4.png" || annotations[1].Filename != "playership3_damage2.png" {
		t.Errorf("annotation order = [%s %s], want filename order",
			annotations[0].Filename, annotations[1].Filename)
	}

	if got := doc.Frames["playership3_damage2.png"].Description; got != "Blue player ship v3 dmg2" {
		t.Errorf("player ship description = %q, want %q", got, "Blue player ship v3 dmg2")
	}
	// The transparent region classifies as black rather than failing.
	if got := doc.Frames["cockpit4.png"].Description; got != "Black cockpit v4" {
		t.Errorf("cockpit description = %q, want %q", got, "Black cockpit v4")
	}
}

func TestAnnotateIdempotent(t *testing.T) {
	sheet := testSheet()

	first := testDoc()
	if _, err := NewAnnotator(nil).Annotate(first, sheet); err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}

	// Annotating a document that already carries descriptions must
	// produce the same values again.
	second := testDoc()
	for name, frame := range second.Frames {
		frame.Description = first.Frames[name].Description
	}
	if _, err := NewAnnotator(nil).Annotate(second, sheet); err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}

	for name, frame := range second.Frames {
		if frame.Description != first.Frames[name].Description {
			t.Errorf("frame %s: description changed between runs: %q vs %q",
				name, first.Frames[name].Description, frame.Description)
		}
	}
}

func TestAnnotateOutOfBoundsRectClamped(t *testing.T) {
	doc := &Document{
		Frames: map[string]*Frame{
			"wing3.png": {Frame: &Rect{X: 2, Y: 2, W: 10, H: 10}},
		},
	}

	if _, err := NewAnnotator(nil).Annotate(doc, testSheet()); err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}

	// The clamped region still covers opaque blue pixels.
	if got := doc.Frames["wing3.png"].Description; got != "Blue wing segment v3" {
		t.Errorf("description = %q, want %q", got, "Blue wing segment v3")
	}
}

func TestAnnotateMissingRect(t *testing.T) {
	doc := &Document{
		Frames: map[string]*Frame{
			"enemy1.png": {},
		},
	}

	_, err := NewAnnotator(nil).Annotate(doc, testSheet())
	if err == nil {
		t.Fatal("Annotate() succeeded, want error")
	}
	if !strings.Contains(err.Error(), "enemy1.png") {
		t.Errorf("error %q does not name the offending frame", err)
	}
}
