// Package logging provides structured, component-scoped logging for the
// classification core, built on top of log/slog. Every component wraps the
// logger it is given with NewComponentLogger so log lines can be filtered
// and correlated by component name.
package logging
