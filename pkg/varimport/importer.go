package varimport

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/varkit/pkg/logger"
	"github.com/dmitrymomot/varkit/pkg/varstore"
)

// Importer reconciles batches of variable entries against a store under an
// explicit conflict policy. It is safe for concurrent use as long as imports
// against the same store are serialized by the caller; the importer itself
// keeps no mutable state between calls.
type Importer struct {
	store varstore.Store
	log   *slog.Logger
}

// Option configures the Importer during construction.
type Option func(*Importer)

// WithLogger sets the logger used for batch summaries.
// Default: a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(i *Importer) {
		if log != nil {
			i.log = log
		}
	}
}

// New creates a new Importer over the given store.
func New(store varstore.Store, opts ...Option) (*Importer, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	i := &Importer{
		store: store,
		log:   logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// Apply imports the batch under the given policy and returns a Report.
//
// Entries are processed strictly in input order, which keeps report ordering
// deterministic and makes PolicyFail's first-conflict reporting reproducible.
//
// Under PolicyFail the batch is all-or-nothing: any validation failure
// returns a ValidationError and any pre-existing key returns a ConflictError,
// in both cases before a single write. Under PolicyOverwrite and PolicySkip,
// validation failures are recorded per key and the remaining entries commit
// independently; partial success is the intended semantic.
//
// A store error aborts the call with a wrapped ErrStoreFailure. Under
// PolicyOverwrite/PolicySkip, writes applied before the error remain in place.
func (i *Importer) Apply(ctx context.Context, entries []Entry, policy Policy) (*Report, error) {
	if !policy.valid() {
		return nil, ErrInvalidPolicy
	}

	id := uuid.New()
	ctx = logger.WithImportID(ctx, id)

	i.log.InfoContext(ctx, "import started",
		slog.Int("entries", len(entries)),
		slog.String("policy", policy.String()),
	)

	valid, failed := validateBatch(entries)

	if policy == PolicyFail {
		if len(failed) > 0 {
			return nil, &ValidationError{Failures: failed}
		}
		return i.applyAtomic(ctx, id, valid)
	}

	report, err := i.applyPerKey(ctx, id, policy, valid, failed)
	if err != nil {
		return nil, err
	}

	i.log.InfoContext(ctx, "import finished",
		slog.Int("created", len(report.Created)),
		slog.Int("overwritten", len(report.Overwritten)),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("failed", len(report.Failed)),
	)

	return report, nil
}

// validateBatch runs the policy-independent validation pass: per-entry
// constraints plus case-sensitive duplicate detection within the batch.
// Every duplicate occurrence after the first fails; the first stays valid.
func validateBatch(entries []Entry) (valid []Entry, failed []Failure) {
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if reason := e.validate(); reason != "" {
			failed = append(failed, Failure{Key: e.Key, Reason: reason})
			continue
		}
		if _, dup := seen[e.Key]; dup {
			failed = append(failed, Failure{Key: e.Key, Reason: ReasonDuplicateInBatch})
			continue
		}
		seen[e.Key] = struct{}{}
		valid = append(valid, e)
	}

	return valid, failed
}

// applyAtomic implements PolicyFail: a pre-scan checks existence for every
// key before any write, so a conflict leaves the store untouched.
func (i *Importer) applyAtomic(ctx context.Context, id uuid.UUID, entries []Entry) (*Report, error) {
	var firstConflict string
	conflicts := 0
	for _, e := range entries {
		exists, err := i.store.Has(ctx, e.Key)
		if err != nil {
			return nil, errors.Join(ErrStoreFailure, err)
		}
		if exists {
			if conflicts == 0 {
				firstConflict = e.Key
			}
			conflicts++
		}
	}

	if conflicts > 0 {
		i.log.WarnContext(ctx, "import aborted on conflict",
			slog.String("key", firstConflict),
			slog.Int("conflicts", conflicts),
		)
		return nil, &ConflictError{Key: firstConflict, Count: conflicts}
	}

	report := &Report{ID: id}
	for _, e := range entries {
		if err := i.store.Set(ctx, variableFromEntry(e)); err != nil {
			return nil, errors.Join(ErrStoreFailure, err)
		}
		report.Created = append(report.Created, e.Key)
	}

	i.log.InfoContext(ctx, "import finished",
		slog.Int("created", len(report.Created)),
	)

	return report, nil
}

// applyPerKey implements PolicyOverwrite and PolicySkip: each valid entry is
// decided and committed independently, in input order.
func (i *Importer) applyPerKey(ctx context.Context, id uuid.UUID, policy Policy, entries []Entry, failed []Failure) (*Report, error) {
	report := &Report{ID: id, Failed: failed}

	for _, e := range entries {
		exists, err := i.store.Has(ctx, e.Key)
		if err != nil {
			return nil, errors.Join(ErrStoreFailure, err)
		}

		switch {
		case !exists:
			if err := i.store.Set(ctx, variableFromEntry(e)); err != nil {
				return nil, errors.Join(ErrStoreFailure, err)
			}
			report.Created = append(report.Created, e.Key)
		case policy == PolicyOverwrite:
			if err := i.store.Set(ctx, variableFromEntry(e)); err != nil {
				return nil, errors.Join(ErrStoreFailure, err)
			}
			report.Overwritten = append(report.Overwritten, e.Key)
		default: // PolicySkip
			report.Skipped = append(report.Skipped, e.Key)
		}
	}

	return report, nil
}

func variableFromEntry(e Entry) varstore.Variable {
	return varstore.Variable{
		Key:       e.Key,
		Value:     e.Value,
		Encrypted: e.Encrypted,
	}
}
