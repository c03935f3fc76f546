package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tokopos/internal/domain"
)

var customerFlags struct {
	name  string
	phone string
	email string
}

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	RunE:  runCustomerList,
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	RunE:  runCustomerAdd,
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerDelete,
}

func init() {
	customerAddCmd.Flags().StringVar(&customerFlags.name, "name", "", "customer name")
	customerAddCmd.Flags().StringVar(&customerFlags.phone, "phone", "", "phone number")
	customerAddCmd.Flags().StringVar(&customerFlags.email, "email", "", "email (optional)")
	customerCmd.AddCommand(customerListCmd, customerAddCmd, customerDeleteCmd)
}

func runCustomerList(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewCustomers); err != nil {
		return err
	}
	fmt.Printf("%-20s %-20s %-15s %s\n", "ID", "NAME", "PHONE", "EMAIL")
	for _, c := range posApp.Customers() {
		fmt.Printf("%-20s %-20s %-15s %s\n", c.ID, c.Name, c.Phone, c.Email)
	}
	return nil
}

func runCustomerAdd(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewCustomers); err != nil {
		return err
	}
	saved, err := posApp.SaveCustomer(cmd.Context(), domain.Customer{
		Name:  customerFlags.name,
		Phone: customerFlags.phone,
		Email: customerFlags.email,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added customer %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func runCustomerDelete(cmd *cobra.Command, args []string) error {
	if err := posApp.Navigate(domain.ViewCustomers); err != nil {
		return err
	}
	if err := posApp.DeleteCustomer(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted customer %s\n", args[0])
	return nil
}
