package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ineffably/moxijs/internal/atlas"
	"github.com/ineffably/moxijs/internal/colour"
	imageutil "github.com/ineffably/moxijs/internal/image"
)

var (
	// List command flags
	listImage   string
	listPreview bool
	listPlain   bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [atlas.json]",
	Short: "Print frame descriptions without writing the document",
	Long: `Annotate an atlas document in memory and print a table of frame
filenames, sampled colours, and descriptions for catalog browsing.

Colour swatches are shown when stdout is a terminal; --preview forces
them on and --plain turns them off.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listImage, "image", "i", "", "atlas image path (default: sibling of the document)")
	listCmd.Flags().BoolVar(&listPreview, "preview", false, "force colour swatches on")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "disable colour swatches")
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	docPath, imagePath, _, err := resolvePaths(cmd.Flags(), args, listImage, "")
	if err != nil {
		return err
	}

	if err := imageutil.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid atlas image: %w", err)
	}

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

	showPreview := listPreview || (!listPlain && term.IsTerminal(int(os.Stdout.Fd())))

	table := NewTable([]string{"FRAME", "COLOUR", "DESCRIPTION"})
	for _, a := range annotations {
		colourCell := a.Colour.Hex()
		if showPreview {
			colourCell = colour.Preview(a.Colour, 4) + " " + colourCell
		}
		table.AddRow([]string{a.Filename, colourCell, a.Description})
	}

	fmt.Print(table.Render())
	return nil
}
