package burger

// Builder can build burgers.
type Builder struct {
	bread   string
	patty   string
	cheese  bool
	lettuce bool
}

// MakeBuilder returns a Builder with nothing set.
func MakeBuilder() Builder {
	return Builder{}
}

// WithBread sets the bread of the burger.
func (b Builder) WithBread(bread string) Builder {
	b.bread = bread
	return b
}

// WithPatty sets the patty of the burger.
func (b Builder) WithPatty(patty string) Builder {
	b.patty = patty
	return b
}

// WithCheese sets if the burger has cheese.
func (b Builder) WithCheese(cheese bool) Builder {
	b.cheese = cheese
	return b
}

// WithLettuce sets if the burger has lettuce.
func (b Builder) WithLettuce(lettuce bool) Builder {
	b.lettuce = lettuce
	return b
}

// Build creates a new Burger.
func (b Builder) Build() Burger {
	return Burger{
		bread:   b.bread,
		patty:   b.patty,
		cheese:  b.cheese,
		lettuce: b.lettuce,
	}
}
