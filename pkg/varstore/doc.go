// Package varstore provides a key/value variable store with in-memory,
// Redis, and PostgreSQL implementations.
//
// All implementations share the same [Store] interface, making it easy to
// use the in-memory store for development and tests and a persistent
// backend in production.
//
// # Interface
//
//   - Get(ctx, key) (Variable, error) — retrieve a variable
//   - Set(ctx, v) error — create or replace a variable
//   - Has(ctx, key) (bool, error) — check existence
//   - Delete(ctx, key) error — remove a key
//   - Keys(ctx) ([]string, error) — list all keys in lexicographic order
//   - Close() error — release resources
//
// # In-Memory Store
//
// Use [NewMemory] for tests and single-process applications:
//
//	s := varstore.NewMemory()
//	defer s.Close()
//
//	s.Set(ctx, varstore.Variable{Key: "api_url", Value: "https://example.com"})
//	v, err := s.Get(ctx, "api_url")
//
// # Redis Store
//
// Use [NewRedis] with an existing go-redis client. Variables are stored as
// JSON under a configurable key prefix:
//
//	s := varstore.NewRedis(client, varstore.WithPrefix("variables"))
//
// # PostgreSQL Store
//
// Use [ConnectPostgres] to open a pool, [Migrate] to apply the schema, and
// [NewPostgres] for the store itself. Variables live in the fixed table
// "variables", created by Migrate:
//
//	cfg, err := varstore.LoadConfig()
//	pool, err := varstore.ConnectPostgres(ctx, cfg)
//	err = varstore.Migrate(ctx, pool, cfg, log)
//	s := varstore.NewPostgres(pool)
//
// # Seeding
//
// [GetOrSet] resolves a variable or seeds it exactly once under concurrent
// access, using singleflight to deduplicate the computation.
//
// # Concurrency
//
// Individual reads and writes are atomic per key in every implementation.
// The store does not provide cross-key transactions; batch-level semantics
// belong to callers such as pkg/varimport.
package varstore
