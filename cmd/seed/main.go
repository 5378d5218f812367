// seed populates a kidsguard database with demo data: the sample catalog,
// sample children and a synthesized monitoring history for every child.
//
// Usage:
//
//	seed catalog
//	seed children --count 3
//	seed monitoring [--seed N] [--timeline sequential|indexed]
//	seed report --output report.xlsx
//	seed schedule [--cron "0 3 * * *"] [--run-now]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
