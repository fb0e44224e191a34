package fidsort

import "context"

// Approver confirms a relocation pass before any file is moved.
//
// Implementations:
//   - ForcedApprover: approves without prompting (--yes, CI)
//   - InteractiveApprover: asks the user on the terminal
type Approver interface {
	// RequestApproval asks whether the given Ready records may be moved
	// under rootPath.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, rootPath string, files []FileRecord) (bool, error)
}
