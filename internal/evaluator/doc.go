// Package evaluator computes quality metrics over labeled datasets:
// per-class accuracy, confusion matrices, stratified cross-validation,
// confidence calibration, latency/throughput benchmarks, and a composed
// production-readiness report.
package evaluator
