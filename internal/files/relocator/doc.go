// Package relocator moves classified spreadsheets into per-identifier
// folders.
//
// Each Ready record is moved to {root}/{fid}/{name}_{fid}.xlsx, where name
// keeps only ASCII letters, digits and spaces. When that path is taken the
// file is moved under a name carrying a millisecond timestamp instead.
// Records that are not Ready are skipped. Failures are reported per record
// and never stop the pass.
//
// A move that fails because another process holds the file is retried with
// backoff (see package retry). Passes made by one Relocator against the same
// root are serialized through RootLocks.
package relocator
