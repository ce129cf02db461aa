// Package tracker implements the in-memory task-and-user engine.
//
// The engine owns two collections - users and tasks - and the
// many-to-many assignment relation between them, exposed through a
// single synchronous call surface: CRUD for both entity types,
// assignment management, and read-only filter/search/statistics
// queries.
//
// DESIGN:
//
// Validation happens once, at construction. Creating a user with a
// blank name or a malformed email, or a task with a blank title, fails
// with a ValidationError. Field updates applied afterwards do not
// re-validate; that looseness is deliberate and can be tightened per
// engine with WithStrictUpdates.
//
// Unknown ids are not errors. Every id-keyed operation reports a
// missing entity with a false/nil return, and callers treat that as a
// normal outcome.
//
// The engine performs no I/O and holds no locks. State lives for the
// process lifetime only, and one logical caller at a time is assumed;
// sharing an engine across goroutines requires external
// synchronization.
//
// Time and identity are injected (Clock, IDGenerator) so that overdue
// evaluation, timestamps, and generated ids are deterministic under
// test.
package tracker
