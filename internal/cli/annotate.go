package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ineffably/moxijs/internal/atlas"
	"github.com/ineffably/moxijs/internal/config"
	imageutil "github.com/ineffably/moxijs/internal/image"
)

var (
	// Annotate command flags
	annotateImage  string
	annotateOutput string
	annotateDryRun bool
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate [atlas.json]",
	Short: "Write frame descriptions into an atlas document",
	Long: `Annotate every frame of a sprite-sheet metadata document with a
human-readable description and rewrite the document in place.

The atlas image is located next to the document (same stem, image
extension) unless --image is given. The document path can come from the
positional argument or from a --config file.

Examples:
  # Annotate a document, image inferred as space-shooter.png
  atlasdesc annotate assets/space-shooter.json

  # Explicit image and separate output file
  atlasdesc annotate --image sheet.png --output labelled.json sheet.json

  # Report what would be written without touching the document
  atlasdesc annotate --dry-run assets/space-shooter.json

  # Paths pinned in a project config file
  atlasdesc annotate --config .atlasdesc.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateImage, "image", "i", "", "atlas image path (default: sibling of the document)")
	annotateCmd.Flags().StringVarP(&annotateOutput, "output", "o", "", "output document path (default: rewrite in place)")
	annotateCmd.Flags().BoolVar(&annotateDryRun, "dry-run", false, "describe frames without writing the document")
}

// runAnnotate executes the annotate command.
func runAnnotate(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	docPath, imagePath, outputPath, err := resolvePaths(cmd.Flags(), args, annotateImage, annotateOutput)
	if err != nil {
		return err
	}

	if err := imageutil.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid atlas image: %w", err)
	}

	log.Debug("loading atlas", "document", docPath, "image", imagePath)

	doc, err := atlas.Load(docPath)
	if err != nil {
		return err
	}

	img, err := imageutil.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load atlas image: %w", err)
	}

	annotations, err := atlas.NewAnnotator(log).Annotate(doc, img)
	if err != nil {
		return err
	}

	if annotateDryRun {
		fmt.Printf("Described %d frames (dry run, document not written)\n", len(annotations))
		return nil
	}

	if err := atlas.Save(doc, outputPath); err != nil {
		return err
	}
	log.Debug("document written", "path", outputPath)

	fmt.Printf("Updated descriptions for %d frames\n", len(annotations))
	return nil
}

// resolvePaths merges the positional argument, command flags, and the
// optional config file into the document, image, and output paths.
// Precedence: flags and arguments over config file values; the image
// path falls back to the document's sibling, the output path to the
// document itself.
func resolvePaths(flags *pflag.FlagSet, args []string, imageFlag, outputFlag string) (docPath, imagePath, outputPath string, err error) {
	if globalConfig != "" {
		cfg, err := config.Load(globalConfig)
		if err != nil {
			return "", "", "", err
		}
		docPath = cfg.Atlas.Document
		imagePath = cfg.Atlas.Image
		outputPath = cfg.Atlas.Output
	}

	if len(args) > 0 {
		docPath = args[0]
	}
	if docPath == "" {
		return "", "", "", fmt.Errorf("no atlas document given (pass a path or use --config)")
	}

	if flags.Changed("image") {
		imagePath = imageFlag
	}
	if imagePath == "" {
		imagePath, err = imageutil.SiblingImagePath(docPath)
		if err != nil {
			return "", "", "", err
		}
	}

	if flags.Changed("output") {
		outputPath = outputFlag
	}
	if outputPath == "" {
		outputPath = docPath
	}

	return docPath, imagePath, outputPath, nil
}
