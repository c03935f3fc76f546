package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tokopos/internal/domain"
	"tokopos/internal/report"
)

var reportCmd = &cobra.Command{
	Use:       "report [today|week]",
	Short:     "Sales summary for a time window",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"today", "week"},
	RunE:      runReport,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Today's trading at a glance",
	RunE:  runDashboard,
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := posApp.Navigate(domain.ViewReports); err != nil {
		return err
	}

	window := "today"
	if len(args) == 1 {
		window = args[0]
	}

	var summary report.Summary
	switch window {
	case "today":
		summary = posApp.SummarizeToday()
	case "week":
		summary = posApp.SummarizeWeek()
	default:
		return fmt.Errorf("unknown window %q, want today or week", window)
	}

	fmt.Printf("%s report\n", window)
	fmt.Printf("  revenue      %.2f\n", summary.TotalRevenue)
	fmt.Printf("  transactions %d\n", summary.TransactionCount)
	if len(summary.TopProducts) > 0 {
		fmt.Println("  top products:")
		for _, p := range summary.TopProducts {
			fmt.Printf("    %-20s sold %-4d revenue %.2f\n", p.Name, p.Quantity, p.Revenue)
		}
	}
	return nil
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewDashboard); err != nil {
		return err
	}

	stats := posApp.Dashboard()
	fmt.Printf("today's revenue      %.2f\n", stats.TodayRevenue)
	fmt.Printf("today's transactions %d\n", stats.TodayTransactions)
	fmt.Printf("today's expenses     %.2f\n", stats.TodayExpenses)
	if len(stats.LatestSales) > 0 {
		fmt.Println("latest sales:")
		for _, s := range stats.LatestSales {
			fmt.Printf("  %-24s %8.2f  %s\n", s.ID, s.Total, s.CreatedAt.Format(time.DateTime))
		}
	}
	return nil
}
