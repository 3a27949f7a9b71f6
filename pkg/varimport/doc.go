// Package varimport reconciles batches of key/value variable entries against
// a varstore.Store under an explicit conflict policy.
//
// # Policies
//
//   - [PolicyFail] — all-or-nothing: any malformed entry or pre-existing key
//     aborts the whole batch before a single write.
//   - [PolicyOverwrite] — per-key: existing values are replaced, the rest of
//     the batch commits independently.
//   - [PolicySkip] — per-key: existing values are left untouched, the rest of
//     the batch commits independently.
//
// # Usage
//
//	imp, err := varimport.New(store, varimport.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	report, err := imp.Apply(ctx, entries, varimport.PolicyOverwrite)
//	var conflict *varimport.ConflictError
//	if errors.As(err, &conflict) {
//		// resubmit with PolicyOverwrite or resolve conflicts first
//	}
//
// The returned [Report] partitions keys by outcome (created, overwritten,
// skipped, failed) preserving batch input order within each category. Report
// counts feed directly into pkg/messages for user-facing summaries.
//
// # Validation
//
// Before any store access, every entry is checked independently of the
// policy: keys must be non-empty and at most [MaxKeyLength] characters, values
// are required, and duplicate keys within one batch (case-sensitive) fail
// every occurrence after the first.
//
// # Concurrency
//
// Apply is synchronous and processes entries strictly in input order.
// Concurrent imports against the same store are not isolated from each
// other; serialize them in the caller.
package varimport
