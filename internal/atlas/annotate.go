package atlas

import (
	"fmt"
	"image"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/ineffably/moxijs/internal/colour"
	imageutil "github.com/ineffably/moxijs/internal/image"
	"github.com/ineffably/moxijs/internal/sprite"
)

// Annotator writes a description onto every frame record of a
// document, derived from the frame's filename and its averaged region
// colour in the atlas image.
type Annotator struct {
	Log hclog.Logger
}

// NewAnnotator creates an Annotator logging through the given logger.
func NewAnnotator(log hclog.Logger) *Annotator {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Annotator{Log: log}
}

// Annotation is the per-frame output of a run, for callers that render
// the catalog instead of writing it back.
type Annotation struct {
	Filename    string
	Colour      colour.RGB
	Description string
}

// Annotate describes every frame in the document, mutating the frame
// records in place. Frames are processed in filename order. A frame
// record without a rectangle fails the run, carrying the offending
// filename. Returns the annotations in processing order.
func (a *Annotator) Annotate(doc *Document, img image.Image) ([]Annotation, error) {
	filenames := make([]string, 0, len(doc.Frames))
	for filename := range doc.Frames {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	annotations := make([]Annotation, 0, len(filenames))
	for _, filename := range filenames {
		frame := doc.Frames[filename]
		if frame == nil || frame.Frame == nil {
			return nil, fmt.Errorf("frame %q: missing frame rectangle", filename)
		}

		bounds := frame.Frame.Bounds()
		sample, sampled := imageutil.AverageOpaque(img, bounds)
		if sampled != bounds {
			a.Log.Warn("frame rectangle clamped to image bounds",
				"frame", filename,
				"rect", bounds.String(),
				"sampled", sampled.String())
		}

		frame.Description = sprite.Describe(filename, sample)
		a.Log.Debug("annotated frame",
			"frame", filename,
			"colour", sample.RGB().Hex(),
			"description", frame.Description)

		annotations = append(annotations, Annotation{
			Filename:    filename,
			Colour:      sample.RGB(),
			Description: frame.Description,
		})
	}

	return annotations, nil
}
