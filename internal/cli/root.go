// Package cli maps each screen of the point-of-sale front-end onto a
// command: one invocation loads state, applies one user action, persists.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tokopos/internal/app"
)

var posApp *app.App

var rootCmd = &cobra.Command{
	Use:           "pos",
	Short:         "Offline-first point-of-sale and bookkeeping",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(sellCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(syncCmd)
}

// Execute runs one CLI action against the loaded application state.
func Execute(ctx context.Context, a *app.App) error {
	posApp = a
	return rootCmd.ExecuteContext(ctx)
}
