package catalog

import "coolbreeze/internal/domain"

// builtin is the stock catalog shipped with the binary. An operator-provided
// CSV (see LoadCSV) replaces it wholesale at startup.
var builtin = []domain.Product{
	{
		Title:       "Premium Split AC - 1.5 Ton",
		Brand:       "Daikin",
		Description: "Inverter technology with 5-star energy rating. Perfect for medium-sized rooms.",
		Price:       "PKR 125,000",
		PriceNum:    125000,
		Features:    []string{"Inverter Technology", "5-Star Rating", "Low Noise"},
		Rating:      4.9,
		Badge:       "Best Seller",
	},
	{
		Title:       "Eco Split AC - 1 Ton",
		Brand:       "Gree",
		Description: "Energy-efficient split AC ideal for small rooms and offices.",
		Price:       "PKR 85,000",
		PriceNum:    85000,
		Features:    []string{"Energy Efficient", "Smart Control", "Auto Clean"},
		Rating:      4.7,
		Badge:       "Popular",
	},
	{
		Title:       "Central AC System - 5 Ton",
		Brand:       "Carrier",
		Description: "Commercial-grade central cooling for large spaces and buildings.",
		Price:       "PKR 450,000",
		PriceNum:    450000,
		Features:    []string{"Commercial Grade", "Zone Control", "Smart Thermostat"},
		Rating:      4.8,
		Badge:       "Commercial",
	},
	{
		Title:       "Portable AC - 1 Ton",
		Brand:       "Haier",
		Description: "Move your cooling where you need it. No installation required.",
		Price:       "PKR 55,000",
		PriceNum:    55000,
		Features:    []string{"Portable", "No Installation", "Dual Mode"},
		Rating:      4.5,
	},
	{
		Title:       "Floor Standing AC - 2 Ton",
		Brand:       "Orient",
		Description: "Powerful floor standing unit for large living rooms and halls.",
		Price:       "PKR 175,000",
		PriceNum:    175000,
		Features:    []string{"High Capacity", "Floor Standing", "Remote Control"},
		Rating:      4.6,
	},
	{
		Title:       "Window AC - 1.5 Ton",
		Brand:       "Dawlance",
		Description: "Classic window AC with modern features and easy installation.",
		Price:       "PKR 65,000",
		PriceNum:    65000,
		Features:    []string{"Easy Install", "Compact", "Affordable"},
		Rating:      4.4,
		Badge:       "Value Pick",
	},
}

// Builtin returns the stock catalog. The built-in data is known good, so a
// construction failure here is a programming error.
func Builtin() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(err)
	}
	return c
}
