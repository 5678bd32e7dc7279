package iocache

import (
	"fmt"

	"github.com/huangsam/citescope/schema"
)

// PrintHistoryStatus prints report history status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Printf("Location: %s\n", status.Location)
	fmt.Printf("Total Runs: %d\n", status.RunCount)
	fmt.Printf("Total Metric Reports: %d\n", status.ReportCount)
	if status.RunCount > 0 {
		fmt.Printf("Oldest Run: %s\n", status.OldestRun.Format("2006-01-02 15:04:05"))
		fmt.Printf("Newest Run: %s\n", status.NewestRun.Format("2006-01-02 15:04:05"))
	}
}
