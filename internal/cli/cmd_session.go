package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginAsManager bool

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Start a session",
	Long: `Start a session for the given email. There is no password: presence of a
session is the only authentication signal, and --manager is the only
permission level.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().BoolVar(&loginAsManager, "manager", false, "log in with manager permissions")
}

func runLogin(cmd *cobra.Command, args []string) error {
	user, err := posApp.Login(cmd.Context(), args[0], loginAsManager)
	if err != nil {
		return err
	}
	role := "cashier"
	if user.IsManager {
		role = "manager"
	}
	fmt.Printf("logged in as %s (%s)\n", user.Email, role)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	posApp.Logout(cmd.Context())
	fmt.Println("logged out")
	return nil
}
