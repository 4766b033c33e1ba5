package common

import (
	"fmt"
	"io"
	"os"

	"cvmenu/internal/errors"
	"cvmenu/internal/utils"
)

// DirLister prints long-format directory listings of the generator's
// output directory.
type DirLister struct {
	logger *errors.Logger
}

// NewDirLister creates a new directory lister
func NewDirLister(logger *errors.Logger) *DirLister {
	return &DirLister{logger: logger}
}

// WriteListing writes one line per entry: mode, size, modification time,
// name. Entries come back sorted by name from the filesystem.
func (dl *DirLister) WriteListing(w io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.NewIOError(errors.ErrCodeListFailed,
			fmt.Sprintf("cannot list output directory: %s", dir), err)
	}

	fmt.Fprintf(w, "%s:\n", dir)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			if dl.logger != nil {
				dl.logger.Warn("skipping unreadable entry", "name", entry.Name(), "error", err)
			}
			continue
		}
		fmt.Fprintf(w, "%s %10s %s %s\n",
			info.Mode(), utils.FormatFileSize(info.Size()),
			utils.FormatListingTime(info.ModTime()), info.Name())
	}

	return nil
}
