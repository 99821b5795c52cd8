package enquiry

import (
	"net/url"
	"strings"
	"testing"

	"coolbreeze/internal/domain"
)

func TestSingleMessage(t *testing.T) {
	msg := SingleMessage(Item{
		Title:    "Eco Split AC - 1 Ton",
		Brand:    "Gree",
		Price:    "PKR 85,000",
		Features: []string{"Energy Efficient", "Auto Clean"},
	})

	for _, want := range []string{
		"Hello! I'm interested in the following product:",
		"*Eco Split AC - 1 Ton*",
		"Brand: Gree",
		"Price: PKR 85,000",
		"Features: Energy Efficient, Auto Clean",
		"Please provide more details and availability. Thank you!",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestMultiMessageNumbersItems(t *testing.T) {
	msg := MultiMessage([]Item{
		{Title: "Portable AC - 1 Ton", Brand: "Haier", Price: "PKR 55,000"},
		{Title: "Window AC - 1.5 Ton", Brand: "Dawlance", Price: "PKR 65,000"},
	})

	if !strings.Contains(msg, "Hello! I'm interested in the following products:") {
		t.Fatalf("missing intro:\n%s", msg)
	}
	if !strings.Contains(msg, "1. *Portable AC - 1 Ton* (Haier) - PKR 55,000") {
		t.Fatalf("missing first line:\n%s", msg)
	}
	if !strings.Contains(msg, "2. *Window AC - 1.5 Ton* (Dawlance) - PKR 65,000") {
		t.Fatalf("missing second line:\n%s", msg)
	}
	if strings.Index(msg, "1. ") > strings.Index(msg, "2. ") {
		t.Fatal("items out of order")
	}
}

func TestItemConversions(t *testing.T) {
	p := domain.Product{Title: "T", Brand: "B", Price: "P", Features: []string{"f"}}
	if got := ItemFromProduct(p); got.Title != "T" || got.Brand != "B" || len(got.Features) != 1 {
		t.Fatalf("unexpected item: %+v", got)
	}
	ci := domain.CartItem{Title: "T2", Brand: "B2", Price: "P2"}
	if got := ItemFromCartItem(ci); got.Title != "T2" || got.Price != "P2" {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestLinkEncodesMessage(t *testing.T) {
	b := NewBuilder("923412359702")
	link := b.Link("Hello! I'm interested & ready")

	if !strings.HasPrefix(link, "https://wa.me/923412359702?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if encoded := strings.TrimPrefix(link, "https://wa.me/923412359702?text="); strings.ContainsAny(encoded, " !'") {
		t.Fatalf("message not fully encoded: %q", encoded)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "Hello! I'm interested & ready" {
		t.Fatalf("round-trip mismatch: %q", got)
	}
}

func TestLinkWithoutMessage(t *testing.T) {
	b := NewBuilder(" 923412359702 ")
	if got := b.Link(""); got != "https://wa.me/923412359702" {
		t.Fatalf("unexpected bare link: %q", got)
	}
}
