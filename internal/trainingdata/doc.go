// Package trainingdata holds labeled samples for training and evaluation,
// and produces stratified train/validation/test splits, quality validation
// reports, CSV import, and a deterministically ordered export of the
// samples (Store.Export returns them; it writes no file).
package trainingdata
