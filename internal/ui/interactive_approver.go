package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// InteractiveApprover implements the Approver interface for console-based
// confirmation. It lists the planned moves and waits for y/N.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) fidsort.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval prints the plan and reads one line. Only "y" or "yes"
// (any case) approves.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, rootPath string, files []fidsort.FileRecord) (bool, error) {
	WritePlan(a.output, rootPath, files)
	fmt.Fprint(a.output, "\nProceed? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			fmt.Fprintln(a.output, "✓ Confirmed.")
			return true, nil
		}
		fmt.Fprintln(a.output, "✗ Cancelled. No files were moved.")
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ fidsort.Approver = (*InteractiveApprover)(nil)
