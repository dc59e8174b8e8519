package reporter

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/kpaschen/sdgcorr/lib/correlation"
	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"github.com/kpaschen/sdgcorr/lib/settings"
	"github.com/kpaschen/sdgcorr/lib/validate"
)

const linearExplanation = `The linear correlation coefficient measures the linear relationship between
two datasets. Strictly speaking, it requires each dataset to be normally
distributed. It varies between -1 and +1, with 0 implying no correlation and
-1 or +1 implying an exact linear relationship. A positive correlation means y
increases as x increases; a negative one means y decreases as x increases.
The p-value roughly indicates the probability of an uncorrelated system
producing datasets with a linear correlation at least as extreme as this one.
It is not entirely reliable for small datasets (below 500 or so).`

const monotonicExplanation = `The monotonic (rank) correlation is a nonparametric measure of the
monotonicity of the relationship between two datasets. Unlike the linear
correlation it does not assume normally distributed data. It varies between
-1 and +1, with 0 implying no correlation and -1 or +1 implying an exact
monotonic relationship. The p-value roughly indicates the probability of an
uncorrelated system producing datasets with a monotonic correlation at least
as extreme as this one. It is not entirely reliable for small datasets
(below 500 or so).`

// ConsoleReporter prints the sanity check, the correlation results and a
// short interpretation.
type ConsoleReporter struct {
	out    io.Writer
	runID  string
	config settings.SdgSettings
}

// NewConsoleReporter writes to out, or to stdout when out is nil.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleReporter{out: out}
}

func (c *ConsoleReporter) Initialize(runID string, config settings.SdgSettings) {
	c.runID = runID
	c.config = config
}

func (c *ConsoleReporter) AddValidation(report validate.Report) error {
	report.Print(c.out)
	return nil
}

func (c *ConsoleReporter) AddAnalysis(ds datatypes.AlignedDataset, result correlation.Result) error {
	fmt.Fprintf(c.out, "\nCorrelation Analysis (%d countries, %s vs. %s):\n", ds.Len(), ds.CodeA, ds.CodeB)

	c.printTest("Linear", result.Linear, linearExplanation)
	fmt.Fprintln(c.out)
	c.printTest("Monotonic", result.Monotonic, monotonicExplanation)
	fmt.Fprintln(c.out)

	fmt.Fprintln(c.out, significanceSentence("Linear", result.Linear))
	fmt.Fprintln(c.out, significanceSentence("Monotonic", result.Monotonic))
	if conclusion := interpretation(result); conclusion != "" {
		fmt.Fprintf(c.out, "\n%s\n", conclusion)
	}
	return nil
}

func (c *ConsoleReporter) printTest(name string, test correlation.Test, explanation string) {
	if !test.Defined() {
		fmt.Fprintf(c.out, "The %s Correlation is undefined: %v\n", name, test.Err)
		return
	}
	fmt.Fprintf(c.out, "The %s Correlation Value is: %v\nIts p-value is: %v\n\n%s\n",
		name, test.Coefficient, test.PValue, explanation)
}

func significanceSentence(name string, test correlation.Test) string {
	switch test.Significance {
	case correlation.UNDEFINED:
		return fmt.Sprintf("The %s Correlation has no defined significance", name)
	case correlation.NOT_SIGNIFICANT:
		return fmt.Sprintf("The %s Correlation is not statistically significant", name)
	}
	return fmt.Sprintf("The %s Correlation is statistically significant at a level of %v",
		name, test.Significance.Level())
}

func strength(r float64) string {
	switch a := math.Abs(r); {
	case a >= 0.7:
		return "strong"
	case a >= 0.4:
		return "moderate"
	case a >= 0.2:
		return "weak"
	}
	return "negligible"
}

func interpretation(result correlation.Result) string {
	lin, mon := result.Linear, result.Monotonic
	if !lin.Defined() || !mon.Defined() {
		return ""
	}
	direction := "positive"
	relation := "synergy"
	if mon.Coefficient < 0 {
		direction = "negative"
		relation = "a trade-off"
	}
	better := "linear"
	if math.Abs(mon.Coefficient) > math.Abs(lin.Coefficient) && mon.PValue <= lin.PValue {
		better = "monotonic"
	}
	return fmt.Sprintf("The %s, %s correlation suggests %s between the two indicators.\n"+
		"The relationship is best approximated using the %s correlation.",
		strength(mon.Coefficient), direction, relation, better)
}

func (c *ConsoleReporter) Flush() error {
	return nil
}
