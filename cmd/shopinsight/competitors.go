package main

import (
	"fmt"

	"github.com/fwojciec/shopinsight"
)

// Run executes the competitors command.
func (c *CompetitorsCmd) Run(deps *Dependencies) error {
	if c.Max < 1 {
		fmt.Fprintf(deps.Stderr, "error: -n must be at least 1\n")
		return shopinsight.Errorf(shopinsight.EINVALID, "-n must be at least 1")
	}

	report, err := deps.Insights.AnalyzeCompetitors(deps.Ctx, c.URL, c.Max)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, report)
	}

	if len(report.Competitors) == 0 {
		fmt.Fprintf(deps.Stdout, "No competitors found for %s\n", report.OriginalStore)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Competitors of %s:\n", report.OriginalStore)
	for _, si := range report.Competitors {
		fmt.Fprintln(deps.Stdout)
		printInsight(deps.Stdout, si)
	}
	return nil
}
