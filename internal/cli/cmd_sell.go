package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tokopos/internal/checkout"
	"tokopos/internal/domain"
)

var sellFlags struct {
	items      []string
	customerID string
}

var sellCmd = &cobra.Command{
	Use:   "sell",
	Short: "Complete a sale from a cart of items",
	Long: `Assemble a cart and complete the sale in one step. Each --item takes
product-id=quantity; quantities are validated against current stock before
the sale is applied.

Example:
  pos sell --item p1=3 --item p2=1 --customer cust-17`,
	RunE: runSell,
}

func init() {
	sellCmd.Flags().StringArrayVar(&sellFlags.items, "item", nil, "cart line as product-id=quantity (repeatable)")
	sellCmd.Flags().StringVar(&sellFlags.customerID, "customer", "", "customer id (optional)")
	_ = sellCmd.MarkFlagRequired("item")
}

func runSell(cmd *cobra.Command, _ []string) error {
	if err := posApp.Navigate(domain.ViewPOS); err != nil {
		return err
	}

	products := posApp.Products()
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	cart := checkout.NewCart()
	for _, entry := range sellFlags.items {
		id, qtyStr, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("invalid --item %q, want product-id=quantity", entry)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty < 1 {
			return fmt.Errorf("invalid quantity in --item %q", entry)
		}
		product, exists := byID[id]
		if !exists {
			return fmt.Errorf("product %s not found", id)
		}
		if err := cart.Add(product); err != nil {
			return err
		}
		if err := cart.UpdateQuantity(id, qty, products); err != nil {
			return err
		}
	}

	sale, err := posApp.CompleteSale(cmd.Context(), cart.Items(), sellFlags.customerID)
	if err != nil {
		return err
	}
	if sale == nil {
		fmt.Println("cart is empty, nothing sold")
		return nil
	}
	cart.Clear()

	fmt.Printf("sale %s\n", sale.ID)
	fmt.Println("------------------------")
	for _, item := range sale.Items {
		fmt.Printf("%-20s x%-3d %8.2f\n", item.ProductName, item.Quantity, float64(item.Quantity)*item.Price)
	}
	fmt.Println("------------------------")
	fmt.Printf("total %26.2f\n", sale.Total)
	return nil
}
