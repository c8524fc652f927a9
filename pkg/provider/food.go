package provider

// Food generates food and drink names.
type Food struct {
	base
}

// NewFood returns a Food provider.
func NewFood(opts ...Option) *Food {
	return &Food{base: newBase(opts)}
}

// Berry returns a berry name.
func (f *Food) Berry() (string, error) { return f.pick("berries") }

// Vegetable returns a vegetable name.
func (f *Food) Vegetable() (string, error) { return f.pick("vegetables") }

// Fruit returns a fruit name.
func (f *Food) Fruit() (string, error) { return f.pick("fruits") }

// Dish returns a dish name.
func (f *Food) Dish() (string, error) { return f.pick("dishes") }

// Spices returns a spice or herb name.
func (f *Food) Spices() (string, error) { return f.pick("spices") }

// Mushroom returns a mushroom name.
func (f *Food) Mushroom() (string, error) { return f.pick("mushrooms") }

// AlcoholicDrink returns an alcoholic drink name.
func (f *Food) AlcoholicDrink() (string, error) { return f.pick("alcoholic_drinks") }

// Cocktail returns a cocktail name.
func (f *Food) Cocktail() (string, error) { return f.pick("cocktails") }
