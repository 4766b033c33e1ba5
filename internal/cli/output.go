package cli

import (
	"fmt"
	"io"

	"cvmenu/internal/common"
	"cvmenu/internal/errors"
)

// writeCompletion prints the acknowledgment and the output directory
// listing on the same writer.
func writeCompletion(w io.Writer, logger *errors.Logger, outputDir string) error {
	fmt.Fprintln(w, "\nDone. Generated files:")
	return common.NewDirLister(logger).WriteListing(w, outputDir)
}
