package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/vvka-141/fidsort/internal/files/relocator"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// previewLimit caps how many planned moves are listed before approval.
const previewLimit = 20

// WritePlan lists where each record is expected to land.
// Collision renames are only known once the move happens.
func WritePlan(w io.Writer, rootPath string, files []fidsort.FileRecord) {
	fmt.Fprintf(w, "\n%d file(s) will be moved under %s:\n", len(files), rootPath)
	for i, f := range files {
		if i == previewLimit {
			fmt.Fprintf(w, "  ... and %d more\n", len(files)-previewLimit)
			break
		}
		target := filepath.Join(f.FID, relocator.TargetFileName(relocator.SanitizeName(f.Name), f.FID))
		fmt.Fprintf(w, "  %s → %s\n", f.RelativePath, target)
	}
}
