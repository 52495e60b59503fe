// Package atlas reads, annotates, and rewrites sprite-sheet metadata
// documents.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Rect is an integer pixel rectangle inside the atlas image.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Bounds returns the rectangle in stdlib image coordinates.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Size is a width/height pair.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Point is a normalised 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is one named sub-rectangle of the atlas image. Description is
// the only field this tool produces; the packer-written fields are
// carried through the rewrite untouched.
type Frame struct {
	Frame            *Rect  `json:"frame"`
	Rotated          *bool  `json:"rotated,omitempty"`
	Trimmed          *bool  `json:"trimmed,omitempty"`
	SpriteSourceSize *Rect  `json:"spriteSourceSize,omitempty"`
	SourceSize       *Size  `json:"sourceSize,omitempty"`
	Pivot            *Point `json:"pivot,omitempty"`
	Description      string `json:"description,omitempty"`
}

// Document is a sprite-sheet metadata file: a mapping from frame
// filename to frame record, plus the packer's meta block.
type Document struct {
	Frames map[string]*Frame `json:"frames"`
	Meta   json.RawMessage   `json:"meta,omitempty"`
}

// Load reads and parses an atlas document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified document path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse atlas document: %w", err)
	}
	if doc.Frames == nil {
		doc.Frames = make(map[string]*Frame)
	}

	return &doc, nil
}

// Save serialises the document with 2-space indentation and writes it
// to the given path. The write goes through a temp file in the same
// directory followed by a rename, so a failed run never leaves a
// truncated document behind.
func Save(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode atlas document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".atlas-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write atlas document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace atlas document: %w", err)
	}

	return nil
}
