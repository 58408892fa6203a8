package recipe

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.trai.ch/zerr"

	"github.com/sarchlab/burger/kitchen"
)

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Parse", func() {
	It("should overlay every key", func() {
		order, err := Parse([]byte(`
bread: Rye
patty: Beef
cheese: false
lettuce: false
`), kitchen.DefaultOrder())

		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal(kitchen.Order{Bread: "Rye", Patty: "Beef"}))
	})

	It("should keep the base for absent keys", func() {
		order, err := Parse([]byte("patty: Chicken\n"), kitchen.DefaultOrder())

		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal(kitchen.Order{
			Bread:   "Whole Wheat",
			Patty:   "Chicken",
			Cheese:  true,
			Lettuce: true,
		}))
	})

	It("should allow an explicitly empty bread", func() {
		order, err := Parse([]byte("bread: \"\"\n"), kitchen.DefaultOrder())

		Expect(err).NotTo(HaveOccurred())
		Expect(order.Burger().String()).To(Equal("Burger with , Veg, Cheese, Lettuce"))
	})

	It("should reject malformed yaml", func() {
		base := kitchen.DefaultOrder()

		order, err := Parse([]byte("cheese: [unterminated"), base)

		Expect(err).To(MatchError(ErrInvalidRecipe))
		Expect(order).To(Equal(base))
	})

	It("should reject non-boolean options", func() {
		_, err := Parse([]byte("cheese: lots\n"), kitchen.Order{})

		Expect(err).To(MatchError(ErrInvalidRecipe))
	})
})

var _ = Describe("LoadFile", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should load a recipe file", func() {
		path := writeFile(dir, "recipe.yaml", "bread: Brioche\nlettuce: false\n")

		order, err := LoadFile(path, kitchen.DefaultOrder())

		Expect(err).NotTo(HaveOccurred())
		Expect(order.Burger().String()).To(Equal("Burger with Brioche, Veg, Cheese"))
	})

	It("should fail on a missing file", func() {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"), kitchen.Order{})

		Expect(err).To(MatchError(ContainSubstring("failed to read recipe")))
	})
})

var _ = Describe("LoadEnvFile", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should load BURGER_ keys", func() {
		path := writeFile(dir, ".env",
			"BURGER_BREAD=Sourdough\nBURGER_PATTY=\"Black Bean\"\nBURGER_CHEESE=false\n")

		order, err := LoadEnvFile(path, kitchen.DefaultOrder())

		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal(kitchen.Order{
			Bread:   "Sourdough",
			Patty:   "Black Bean",
			Lettuce: true,
		}))
	})

	It("should not touch the process environment", func() {
		path := writeFile(dir, ".env", "BURGER_BREAD=Sourdough\n")

		_, err := LoadEnvFile(path, kitchen.Order{})

		Expect(err).NotTo(HaveOccurred())
		_, set := os.LookupEnv(EnvBread)
		Expect(set).To(BeFalse())
	})

	It("should ignore unrelated keys", func() {
		path := writeFile(dir, ".env", "OTHER=1\n")

		order, err := LoadEnvFile(path, kitchen.DefaultOrder())

		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal(kitchen.DefaultOrder()))
	})

	It("should reject an invalid boolean", func() {
		path := writeFile(dir, ".env", "BURGER_LETTUCE=maybe\n")

		order, err := LoadEnvFile(path, kitchen.DefaultOrder())

		Expect(err).To(MatchError(ErrInvalidRecipe))
		Expect(err).To(MatchError(ContainSubstring("not a boolean")))

		var zErr *zerr.Error
		Expect(errors.As(err, &zErr)).To(BeTrue())
		Expect(zErr.Metadata()).To(HaveKeyWithValue("key", EnvLettuce))
		Expect(zErr.Metadata()).To(HaveKeyWithValue("value", "maybe"))
		Expect(order).To(Equal(kitchen.DefaultOrder()))
	})

	It("should fail on a missing file", func() {
		_, err := LoadEnvFile(filepath.Join(dir, "missing.env"), kitchen.Order{})

		Expect(err).To(MatchError(ContainSubstring("failed to read env file")))
	})
})
