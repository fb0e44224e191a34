package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// ForcedApprover implements the Approver interface for non-interactive
// runs. It prints the plan and approves without asking; used when --yes
// is given or no terminal is attached.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) fidsort.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr}
}

// RequestApproval approves unless ctx is already done. The full plan is
// printed only in verbose mode.
func (a *ForcedApprover) RequestApproval(ctx context.Context, rootPath string, files []fidsort.FileRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if a.verbose {
		WritePlan(a.output, rootPath, files)
	}
	fmt.Fprintf(a.output, "✓ Moving %d file(s) without confirmation (--yes)\n", len(files))
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ fidsort.Approver = (*ForcedApprover)(nil)
