// Package burger provides the Burger value and the Builder that assembles it.
package burger

// Burger is an assembled burger. A Burger is immutable and can only be
// populated by a Builder.
type Burger struct {
	bread   string
	patty   string
	cheese  bool
	lettuce bool
}

// Bread returns the bread of the burger.
func (b Burger) Bread() string {
	return b.bread
}

// Patty returns the patty of the burger.
func (b Burger) Patty() string {
	return b.patty
}

// HasCheese returns true if the burger comes with cheese.
func (b Burger) HasCheese() bool {
	return b.cheese
}

// HasLettuce returns true if the burger comes with lettuce.
func (b Burger) HasLettuce() bool {
	return b.lettuce
}

// String describes the burger. Bread and patty are always listed, even when
// they are empty.
func (b Burger) String() string {
	s := "Burger with " + b.bread + ", " + b.patty

	if b.cheese {
		s += ", Cheese"
	}

	if b.lettuce {
		s += ", Lettuce"
	}

	return s
}
