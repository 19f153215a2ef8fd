package evaluator

import (
	"strings"
	"testing"
)

func TestBuildConfusionMatrixCounts(t *testing.T) {
	cases := []TestCase{
		{Expected: "A", Predicted: "A"},
		{Expected: "A", Predicted: "B"},
		{Expected: "B", Predicted: "B"},
		{Expected: "B", Predicted: "B"},
	}
	matrix, err := BuildConfusionMatrix(cases)
	if err != nil {
		t.Fatalf("BuildConfusionMatrix: %v", err)
	}
	if matrix.TP("A") != 1 {
		t.Fatalf("expected TP(A) = 1, got %d", matrix.TP("A"))
	}
	if matrix.FN("A") != 1 {
		t.Fatalf("expected FN(A) = 1, got %d", matrix.FN("A"))
	}
	if matrix.FP("B") != 1 {
		t.Fatalf("expected FP(B) = 1, got %d", matrix.FP("B"))
	}
	if matrix.TP("B") != 2 {
		t.Fatalf("expected TP(B) = 2, got %d", matrix.TP("B"))
	}
	total := len(cases)
	if matrix.TN("A") != total-matrix.TP("A")-matrix.FP("A")-matrix.FN("A") {
		t.Fatal("TN should be total minus TP, FP, FN")
	}
}

func TestBuildConfusionMatrixEmptyDataset(t *testing.T) {
	_, err := BuildConfusionMatrix(nil)
	if err == nil {
		t.Fatal("expected EmptyDataset error")
	}
}

func TestConfusionMatrixStringRendersLabels(t *testing.T) {
	cases := []TestCase{{Expected: "A", Predicted: "A"}, {Expected: "B", Predicted: "A"}}
	matrix, err := BuildConfusionMatrix(cases)
	if err != nil {
		t.Fatalf("BuildConfusionMatrix: %v", err)
	}
	rendered := matrix.String()
	if !strings.Contains(rendered, "A") || !strings.Contains(rendered, "B") {
		t.Fatal("expected rendered matrix to contain both labels")
	}
}

func TestConfusionMatrixUnknownLabelReturnsZero(t *testing.T) {
	cases := []TestCase{{Expected: "A", Predicted: "A"}}
	matrix, err := BuildConfusionMatrix(cases)
	if err != nil {
		t.Fatalf("BuildConfusionMatrix: %v", err)
	}
	if matrix.TP("Z") != 0 || matrix.FP("Z") != 0 || matrix.FN("Z") != 0 {
		t.Fatal("expected zero counts for an unknown label")
	}
}
