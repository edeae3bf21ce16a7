package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rabbinur71/quickbite-frontend/internal/cart"
)

// Message renders the cart and delivery address into the order text handed
// to the restaurant over WhatsApp. The layout is fixed: greeting, numbered
// item lines in cart order, grand total, address block, optional apartment
// and instructions lines, closing request for confirmation.
func Message(items []cart.Line, totalPrice float64, address Address) string {
	var b strings.Builder

	b.WriteString("Hello! I would like to order these foods:\n\n")

	for i, item := range items {
		itemTotal := item.UnitPrice() * float64(item.Count())
		if special, ok := item.(cart.SpecialLine); ok {
			fmt.Fprintf(&b, "%d. %s (for %d people) - $%.2f\n", i+1, special.Name, special.People, itemTotal)
		} else {
			fmt.Fprintf(&b, "%d. %s x%d - $%.2f\n", i+1, item.Label(), item.Count(), itemTotal)
		}
	}

	fmt.Fprintf(&b, "\nTotal: $%.2f\n\n", totalPrice)

	b.WriteString("My delivery address is:\n")
	b.WriteString(address.Street + "\n")
	fmt.Fprintf(&b, "%s, %s %s\n", address.City, address.State, address.ZipCode)

	if address.Apartment != "" {
		fmt.Fprintf(&b, "Apartment: %s\n", address.Apartment)
	}
	if address.Instructions != "" {
		fmt.Fprintf(&b, "Delivery Instructions: %s\n", address.Instructions)
	}

	b.WriteString("\nPlease confirm my order. Thank you!")

	return b.String()
}

// Link builds the WhatsApp deep link carrying the order message for the
// restaurant's fixed number.
func Link(whatsappNumber, message string) string {
	return "https://wa.me/" + whatsappNumber + "?text=" + url.QueryEscape(message)
}
