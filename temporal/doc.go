// Package temporal resolves natural-language date phrases ("today",
// "next friday", "in 3 days", "2 weeks ago", "January 15") into concrete
// instants.
//
// Resolution is two steps. Classify matches the normalized phrase against an
// ordered rule table and returns a tagged Interpretation; evaluation then
// applies the arithmetic for that Kind against a reference instant and a
// concrete week-start weekday. Week-start only affects week-unit phrases
// ("next week", "this week"); weekday phrases ("next monday") never depend on
// it.
//
// The package holds one piece of process-wide state: the locale Environment.
// Initialize must run before Resolve; Reinitialize swaps it atomically and
// Teardown clears it. Resolve is safe for concurrent use.
//
// Formatting is deliberately absent: a Result carries a time.Time and callers
// choose how to render it (see package format).
package temporal
