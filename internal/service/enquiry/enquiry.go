package enquiry

import (
	"fmt"
	"net/url"
	"strings"

	"coolbreeze/internal/domain"
)

const (
	singleIntro = "Hello! I'm interested in the following product:"
	multiIntro  = "Hello! I'm interested in the following products:"
	outro       = "Please provide more details and availability. Thank you!"
)

// Item is the subset of product data an enquiry message carries.
type Item struct {
	Title    string
	Brand    string
	Price    string
	Features []string
}

func ItemFromProduct(p domain.Product) Item {
	return Item{Title: p.Title, Brand: p.Brand, Price: p.Price, Features: p.Features}
}

func ItemFromCartItem(ci domain.CartItem) Item {
	return Item{Title: ci.Title, Brand: ci.Brand, Price: ci.Price, Features: ci.Features}
}

// SingleMessage formats an enquiry about one product.
func SingleMessage(item Item) string {
	var b strings.Builder
	b.WriteString(singleIntro)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "🔹 *%s*\n", item.Title)
	fmt.Fprintf(&b, "🏷️ Brand: %s\n", item.Brand)
	fmt.Fprintf(&b, "💰 Price: %s\n", item.Price)
	fmt.Fprintf(&b, "✨ Features: %s\n", strings.Join(item.Features, ", "))
	b.WriteString("\n")
	b.WriteString(outro)
	return b.String()
}

// MultiMessage formats an enquiry about several products as a numbered list.
func MultiMessage(items []Item) string {
	var b strings.Builder
	b.WriteString(multiIntro)
	b.WriteString("\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. *%s* (%s) - %s\n", i+1, item.Title, item.Brand, item.Price)
	}
	b.WriteString("\n")
	b.WriteString(outro)
	return b.String()
}

// Builder produces outbound messaging links for a fixed contact number.
// Opening the link is the client's job; there is no response to observe.
type Builder struct {
	number string
}

func NewBuilder(number string) *Builder {
	return &Builder{number: strings.TrimSpace(number)}
}

// Link returns the wa.me URL carrying the percent-encoded message text.
func (b *Builder) Link(message string) string {
	if message == "" {
		return "https://wa.me/" + b.number
	}
	return "https://wa.me/" + b.number + "?text=" + url.QueryEscape(message)
}
