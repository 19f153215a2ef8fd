// Package modelstore persists and rehydrates trained models: a fixed
// binary header, JSON metadata, a label vocabulary, an opaque weights blob,
// and a trailing checksum, guarded against concurrent writers with an
// advisory file lock.
package modelstore
