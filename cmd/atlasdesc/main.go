// Atlasdesc - sprite atlas description annotator
//
// Atlasdesc labels the frames of a sprite-sheet metadata document with
// human-readable descriptions derived from frame filenames and sampled
// pixel colours, for browsing the asset catalog.
package main

import (
	"os"

	"github.com/ineffably/moxijs/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
