// Package kitchen prepares burgers for orders and reports every order to its
// hooks.
package kitchen

import (
	"github.com/sarchlab/burger"
)

// Order is the plain-data form of a burger request.
type Order struct {
	Bread   string `json:"bread" yaml:"bread"`
	Patty   string `json:"patty" yaml:"patty"`
	Cheese  bool   `json:"cheese" yaml:"cheese"`
	Lettuce bool   `json:"lettuce" yaml:"lettuce"`
}

// DefaultOrder is the house burger.
func DefaultOrder() Order {
	return Order{
		Bread:   "Whole Wheat",
		Patty:   "Veg",
		Cheese:  true,
		Lettuce: true,
	}
}

// Burger assembles the burger that the order asks for.
func (o Order) Burger() burger.Burger {
	return burger.MakeBuilder().
		WithBread(o.Bread).
		WithPatty(o.Patty).
		WithCheese(o.Cheese).
		WithLettuce(o.Lettuce).
		Build()
}

// Ticket is the record of a prepared order.
type Ticket struct {
	ID     string
	Order  Order
	Burger burger.Burger
}
