package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tokopos/internal/domain"
)

var expenseFlags struct {
	description string
	amount      float64
}

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and review expenses",
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses, newest first",
	RunE:  runExpenseList,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	RunE:  runExpenseAdd,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseDelete,
}

func init() {
	expenseAddCmd.Flags().StringVar(&expenseFlags.description, "desc", "", "what the money was spent on")
	expenseAddCmd.Flags().Float64Var(&expenseFlags.amount, "amount", 0, "amount spent")
	expenseCmd.AddCommand(expenseListCmd, expenseAddCmd, expenseDeleteCmd)
}

func runExpenseList(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewExpenses); err != nil {
		return err
	}
	expenses := posApp.Expenses()
	fmt.Printf("%-20s %-30s %10s  %s\n", "ID", "DESCRIPTION", "AMOUNT", "DATE")
	for i := len(expenses) - 1; i >= 0; i-- {
		e := expenses[i]
		fmt.Printf("%-20s %-30s %10.2f  %s\n", e.ID, e.Description, e.Amount, e.CreatedAt.Format(time.DateOnly))
	}
	return nil
}

func runExpenseAdd(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewExpenses); err != nil {
		return err
	}
	expense, err := posApp.AddExpense(cmd.Context(), expenseFlags.description, expenseFlags.amount)
	if err != nil {
		return err
	}
	fmt.Printf("recorded expense %s (%.2f)\n", expense.ID, expense.Amount)
	return nil
}

func runExpenseDelete(cmd *cobra.Command, args []string) error {
	if err := posApp.Navigate(domain.ViewExpenses); err != nil {
		return err
	}
	if err := posApp.DeleteExpense(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted expense %s\n", args[0])
	return nil
}
