package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncOffline bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize data (simulated)",
	Long: `Run the data synchronization affordance. No data is transferred; the
operation is a fixed delay. When offline it fails immediately without
starting.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncOffline, "offline", false, "behave as if the network is down")
}

func runSync(cmd *cobra.Command, _ []string) error {
	posApp.SetOnline(!syncOffline)
	if err := posApp.Sync(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("data synchronized")
	return nil
}
