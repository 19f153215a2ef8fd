// Package features implements FeatureEngineer: a pure, never-failing
// projection of a Tokenization into a dense numeric FeatureVector consumed
// by the Predictor. Every subpart is a fixed-order slice of float64 so
// to_array()/names() stay a total function over the feature set.
package features
