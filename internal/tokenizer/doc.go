// Package tokenizer implements the deterministic filename parser: given a
// raw filename it extracts series tokens, an episode designator, a quality
// descriptor, language tags, a release group, and the file extension. It
// performs no I/O and never blocks.
package tokenizer
