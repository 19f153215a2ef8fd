// Package errs defines the classification core's error taxonomy. Every
// public operation returns explicit error values rather than panicking; the
// sentinels here let callers classify a failure with errors.Is while a
// *ClassificationError carries the structured context for logging.
package errs
