// Package retry repeats filesystem operations that fail because another
// process briefly holds the file.
//
// Spreadsheet editors, sync clients and virus scanners keep short-lived
// handles on workbooks. A rename that hits one of those handles fails with
// EBUSY on Unix or a sharing violation on Windows, and usually succeeds a
// moment later.
//
// # Example Usage
//
//	executor := retry.NewExecutor(
//	    retry.NewFileSystemClassifier(),
//	    retry.NewExponentialBackoff(3, retry.WithInitialDelay(50*time.Millisecond)),
//	)
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return os.Rename(src, dst)
//	})
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. WithOnRetry returns a copy.
package retry
