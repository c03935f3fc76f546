package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tokopos/internal/domain"
)

var productFlags struct {
	name    string
	price   float64
	stock   int
	barcode string
}

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE:  runProductList,
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product (manager only)",
	RunE:  runProductAdd,
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product in place (manager only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductUpdate,
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product (manager only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductDelete,
}

func init() {
	for _, c := range []*cobra.Command{productAddCmd, productUpdateCmd} {
		c.Flags().StringVar(&productFlags.name, "name", "", "product name")
		c.Flags().Float64Var(&productFlags.price, "price", 0, "unit price")
		c.Flags().IntVar(&productFlags.stock, "stock", 0, "stock on hand")
		c.Flags().StringVar(&productFlags.barcode, "barcode", "", "barcode")
	}
	productCmd.AddCommand(productListCmd, productAddCmd, productUpdateCmd, productDeleteCmd)
}

func runProductList(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewProducts); err != nil {
		return err
	}
	fmt.Printf("%-20s %-20s %10s %8s %10s\n", "ID", "NAME", "PRICE", "STOCK", "BARCODE")
	for _, p := range posApp.Products() {
		fmt.Printf("%-20s %-20s %10.2f %8d %10s\n", p.ID, p.Name, p.Price, p.Stock, p.Barcode)
	}
	return nil
}

func runProductAdd(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewProducts); err != nil {
		return err
	}
	saved, err := posApp.SaveProduct(cmd.Context(), domain.Product{
		Name:    productFlags.name,
		Price:   productFlags.price,
		Stock:   productFlags.stock,
		Barcode: productFlags.barcode,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added product %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func runProductUpdate(cmd *cobra.Command, args []string) error {
	if err := posApp.Navigate(domain.ViewProducts); err != nil {
		return err
	}

	var existing *domain.Product
	for _, p := range posApp.Products() {
		if p.ID == args[0] {
			existing = &p
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("product %s not found", args[0])
	}

	if cmd.Flags().Changed("name") {
		existing.Name = productFlags.name
	}
	if cmd.Flags().Changed("price") {
		existing.Price = productFlags.price
	}
	if cmd.Flags().Changed("stock") {
		existing.Stock = productFlags.stock
	}
	if cmd.Flags().Changed("barcode") {
		existing.Barcode = productFlags.barcode
	}

	saved, err := posApp.SaveProduct(cmd.Context(), *existing)
	if err != nil {
		return err
	}
	fmt.Printf("updated product %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func runProductDelete(cmd *cobra.Command, args []string) error {
	if err := posApp.Navigate(domain.ViewProducts); err != nil {
		return err
	}
	if err := posApp.DeleteProduct(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted product %s\n", args[0])
	return nil
}
