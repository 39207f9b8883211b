package output

import (
	"github.com/abatilo/spin/internal/spinner"
	"github.com/abatilo/spin/internal/task"
	"github.com/abatilo/spin/internal/weights"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatResult(r spinner.Result) string
	FormatOdds(bd weights.Breakdown) string
	FormatDistribution(items []weights.WeightedItem) string
	FormatTaskList(tasks []task.Task) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
