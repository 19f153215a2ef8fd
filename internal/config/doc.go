// Package config loads and validates the classification core's
// configuration surface: thresholds, tokenization knobs, training ratios,
// feature toggles, and CSV import behavior.
package config
