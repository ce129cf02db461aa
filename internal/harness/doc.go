// Package harness runs declarative YAML scenarios against the tracker
// engine.
//
// A scenario is a named sequence of engine operations (create-user,
// create-task, assign, advance, ...) followed by assertions over the
// final engine state. Created entity ids are bound to scenario-local
// names with "as:" and referenced later as "$name", so scenario files
// never contain generated ids.
//
// Every run uses a fresh engine with a frozen clock and sequential id
// generation, which makes the resulting step trace deterministic and
// suitable for golden-file comparison (see RunWithGolden).
package harness
