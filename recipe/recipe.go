// Package recipe loads orders from recipe files and dotenv files.
package recipe

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/burger/kitchen"
)

var (
	// ErrInvalidRecipe is returned when a recipe cannot be understood.
	ErrInvalidRecipe = zerr.New("invalid recipe")
)

// Keys recognized in dotenv files.
const (
	EnvBread   = "BURGER_BREAD"
	EnvPatty   = "BURGER_PATTY"
	EnvCheese  = "BURGER_CHEESE"
	EnvLettuce = "BURGER_LETTUCE"
)

// recipeFile uses pointers so that keys absent from the file keep the value of
// the base order.
type recipeFile struct {
	Bread   *string `yaml:"bread"`
	Patty   *string `yaml:"patty"`
	Cheese  *bool   `yaml:"cheese"`
	Lettuce *bool   `yaml:"lettuce"`
}

// Parse overlays a YAML recipe onto the base order.
func Parse(data []byte, base kitchen.Order) (kitchen.Order, error) {
	var r recipeFile
	if err := yaml.Unmarshal(data, &r); err != nil {
		return base, zerr.Wrap(ErrInvalidRecipe, err.Error())
	}

	order := base
	if r.Bread != nil {
		order.Bread = *r.Bread
	}
	if r.Patty != nil {
		order.Patty = *r.Patty
	}
	if r.Cheese != nil {
		order.Cheese = *r.Cheese
	}
	if r.Lettuce != nil {
		order.Lettuce = *r.Lettuce
	}

	return order, nil
}

// LoadFile reads a YAML recipe from disk and overlays it onto the base order.
func LoadFile(path string, base kitchen.Order) (kitchen.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, zerr.With(zerr.Wrap(err, "failed to read recipe"), "path", path)
	}

	order, err := Parse(data, base)
	if err != nil {
		return base, zerr.With(err, "path", path)
	}

	return order, nil
}

// LoadEnvFile reads a dotenv file and overlays the BURGER_* keys onto the base
// order. The process environment is left untouched.
func LoadEnvFile(path string, base kitchen.Order) (kitchen.Order, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return base, zerr.With(zerr.Wrap(err, "failed to read env file"), "path", path)
	}

	return applyEnv(values, base)
}

func applyEnv(values map[string]string, base kitchen.Order) (kitchen.Order, error) {
	order := base

	if v, ok := values[EnvBread]; ok {
		order.Bread = v
	}

	if v, ok := values[EnvPatty]; ok {
		order.Patty = v
	}

	if v, ok := values[EnvCheese]; ok {
		b, err := parseBool(EnvCheese, v)
		if err != nil {
			return base, err
		}
		order.Cheese = b
	}

	if v, ok := values[EnvLettuce]; ok {
		b, err := parseBool(EnvLettuce, v)
		if err != nil {
			return base, err
		}
		order.Lettuce = b
	}

	return order, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		err = zerr.Wrap(ErrInvalidRecipe, "not a boolean")
		return false, zerr.With(zerr.With(err, "key", key), "value", value)
	}

	return b, nil
}
