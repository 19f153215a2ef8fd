package evaluator

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mediabutler/internal/errs"
)

// BuildConfusionMatrix computes a square confusion matrix over the union of
// expected and predicted labels; row is actual, column is predicted.
func BuildConfusionMatrix(cases []TestCase) (ConfusionMatrix, error) {
	if len(cases) == 0 {
		return ConfusionMatrix{}, errs.WrapCode(errs.ErrData, componentAccuracy, "confusion_matrix", errs.CodeEmptyDataset, "no test cases provided", nil)
	}

	labels := labelUnion(cases)
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}
	for _, c := range cases {
		counts[index[c.Expected]][index[c.Predicted]]++
	}

	return ConfusionMatrix{Labels: labels, Counts: counts}, nil
}

// TP returns the true-positive count for label, i.e. M[label,label].
func (m ConfusionMatrix) TP(label string) int {
	i := m.indexOf(label)
	if i < 0 {
		return 0
	}
	return m.Counts[i][i]
}

// FP returns the false-positive count for label: samples predicted label but
// actually something else.
func (m ConfusionMatrix) FP(label string) int {
	j := m.indexOf(label)
	if j < 0 {
		return 0
	}
	sum := 0
	for i := range m.Counts {
		if i != j {
			sum += m.Counts[i][j]
		}
	}
	return sum
}

// FN returns the false-negative count for label: samples actually label but
// predicted something else.
func (m ConfusionMatrix) FN(label string) int {
	i := m.indexOf(label)
	if i < 0 {
		return 0
	}
	sum := 0
	for j := range m.Counts[i] {
		if j != i {
			sum += m.Counts[i][j]
		}
	}
	return sum
}

// TN returns the true-negative count for label: everything not involving it.
func (m ConfusionMatrix) TN(label string) int {
	total := 0
	for _, row := range m.Counts {
		for _, v := range row {
			total += v
		}
	}
	return total - m.TP(label) - m.FP(label) - m.FN(label)
}

func (m ConfusionMatrix) indexOf(label string) int {
	for i, l := range m.Labels {
		if l == label {
			return i
		}
	}
	return -1
}

// String renders the matrix as a padded, human-readable table.
func (m ConfusionMatrix) String() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(m.Labels)+1)
	header = append(header, "actual \\ predicted")
	for _, label := range m.Labels {
		header = append(header, label)
	}
	tw.AppendHeader(header)

	for i, label := range m.Labels {
		row := make(table.Row, 0, len(m.Labels)+1)
		row = append(row, label)
		for j := range m.Labels {
			row = append(row, fmt.Sprintf("%d", m.Counts[i][j]))
		}
		tw.AppendRow(row)
	}

	columnConfigs := make([]table.ColumnConfig, 0, len(m.Labels)+1)
	columnConfigs = append(columnConfigs, table.ColumnConfig{Number: 1, Align: text.AlignLeft})
	for i := range m.Labels {
		columnConfigs = append(columnConfigs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
