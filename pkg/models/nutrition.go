package models

import (
	"fmt"
	"time"
)

// DateLayout is the format of diary days in URLs and request bodies
const DateLayout = "2006-01-02"

// Nutrition holds nutrient amounts for a quantity of food.
// Energy is in kcal, everything else in grams.
type Nutrition struct {
	Kcal         float64 `json:"kcal" minimum:"0" doc:"Energy in kcal"`
	Protein      float64 `json:"protein" minimum:"0" doc:"Protein in grams"`
	Carbohydrate float64 `json:"carbohydrate" minimum:"0" doc:"Carbohydrate in grams"`
	Sugar        float64 `json:"sugar" minimum:"0" required:"false" doc:"Sugars in grams"`
	Fat          float64 `json:"fat" minimum:"0" doc:"Fat in grams"`
	SaturatedFat float64 `json:"saturated_fat" minimum:"0" required:"false" doc:"Saturated fat in grams"`
	Fibre        float64 `json:"fibre" minimum:"0" required:"false" doc:"Fibre in grams"`
	Salt         float64 `json:"salt" minimum:"0" required:"false" doc:"Salt in grams"`
}

// Add returns the sum of n and o
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Kcal:         n.Kcal + o.Kcal,
		Protein:      n.Protein + o.Protein,
		Carbohydrate: n.Carbohydrate + o.Carbohydrate,
		Sugar:        n.Sugar + o.Sugar,
		Fat:          n.Fat + o.Fat,
		SaturatedFat: n.SaturatedFat + o.SaturatedFat,
		Fibre:        n.Fibre + o.Fibre,
		Salt:         n.Salt + o.Salt,
	}
}

// Scale multiplies every nutrient by f
func (n Nutrition) Scale(f float64) Nutrition {
	return Nutrition{
		Kcal:         n.Kcal * f,
		Protein:      n.Protein * f,
		Carbohydrate: n.Carbohydrate * f,
		Sugar:        n.Sugar * f,
		Fat:          n.Fat * f,
		SaturatedFat: n.SaturatedFat * f,
		Fibre:        n.Fibre * f,
		Salt:         n.Salt * f,
	}
}

// Get returns the amount of the nutrient with the given catalogue key
func (n Nutrition) Get(key string) (float64, bool) {
	switch key {
	case "kcal":
		return n.Kcal, true
	case "protein":
		return n.Protein, true
	case "carbohydrate":
		return n.Carbohydrate, true
	case "sugar":
		return n.Sugar, true
	case "fat":
		return n.Fat, true
	case "saturated_fat":
		return n.SaturatedFat, true
	case "fibre":
		return n.Fibre, true
	case "salt":
		return n.Salt, true
	}
	return 0, false
}

// Nutrient describes one entry of the nutrient catalogue
type Nutrient struct {
	Key   string `json:"key" doc:"Nutrient key"`
	Label string `json:"label" doc:"Display label"`
	Unit  string `json:"unit" doc:"Display unit"`
}

// Nutrients is the catalogue of tracked nutrients in display order
var Nutrients = []Nutrient{
	{Key: "kcal", Label: "Energy", Unit: "kcal"},
	{Key: "protein", Label: "Protein", Unit: "g"},
	{Key: "carbohydrate", Label: "Carbohydrate", Unit: "g"},
	{Key: "sugar", Label: "Sugars", Unit: "g"},
	{Key: "fat", Label: "Fat", Unit: "g"},
	{Key: "saturated_fat", Label: "Saturates", Unit: "g"},
	{Key: "fibre", Label: "Fibre", Unit: "g"},
	{Key: "salt", Label: "Salt", Unit: "g"},
}

// LookupNutrient finds a catalogue entry by key
func LookupNutrient(key string) (Nutrient, bool) {
	for _, n := range Nutrients {
		if n.Key == key {
			return n, true
		}
	}
	return Nutrient{}, false
}

// Meals a diary food can be logged against
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Ingredient is a basic food with nutrition given per 100 g
type Ingredient struct {
	ID          string    `json:"id" doc:"Ingredient unique identifier"`
	Name        string    `json:"name" doc:"Ingredient name"`
	Description string    `json:"description,omitempty" doc:"Free text description"`
	Nutrition   Nutrition `json:"nutrition" doc:"Nutrition per 100 g"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt   time.Time `json:"updated_at" doc:"Last update timestamp"`
}

// Product is a purchasable pack of an ingredient
type Product struct {
	ID           string    `json:"id" doc:"Product unique identifier"`
	IngredientID string    `json:"ingredient_id" doc:"Ingredient the product contains"`
	Name         string    `json:"name" doc:"Product name, such as a brand and shop"`
	PackGrams    float64   `json:"pack_grams" doc:"Weight of one pack in grams"`
	Price        float64   `json:"price" doc:"Price of one pack"`
	CreatedAt    time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt    time.Time `json:"updated_at" doc:"Last update timestamp"`
}

// RecipeComponent is a weighed ingredient within a recipe
type RecipeComponent struct {
	IngredientID string  `json:"ingredient_id" doc:"Ingredient ID"`
	Grams        float64 `json:"grams" exclusiveMinimum:"0" doc:"Weight of the ingredient in grams"`
}

// Recipe combines ingredients and divides them into servings
type Recipe struct {
	ID          string            `json:"id" doc:"Recipe unique identifier"`
	Name        string            `json:"name" doc:"Recipe name"`
	Description string            `json:"description,omitempty" doc:"Free text description"`
	Servings    float64           `json:"servings" doc:"Number of servings the recipe makes"`
	Components  []RecipeComponent `json:"components" doc:"Ingredients of the recipe"`
	CreatedAt   time.Time         `json:"created_at" doc:"Creation timestamp"`
}

// DiaryFood is one logged food on a diary day. Exactly one of
// IngredientID (Quantity in grams) or RecipeID (Quantity in servings) is set.
type DiaryFood struct {
	ID           string    `json:"id" doc:"Diary food unique identifier"`
	Day          time.Time `json:"day" doc:"Diary day"`
	Meal         string    `json:"meal" doc:"Meal the food was eaten at"`
	IngredientID *string   `json:"ingredient_id,omitempty" doc:"Logged ingredient"`
	RecipeID     *string   `json:"recipe_id,omitempty" doc:"Logged recipe"`
	Quantity     float64   `json:"quantity" doc:"Grams of ingredient or servings of recipe"`
	CreatedAt    time.Time `json:"created_at" doc:"Creation timestamp"`
}

// Target is a daily minimum and/or maximum for a nutrient
type Target struct {
	Nutrient  string    `json:"nutrient" doc:"Nutrient key"`
	Min       *float64  `json:"min,omitempty" doc:"Daily minimum"`
	Max       *float64  `json:"max,omitempty" doc:"Daily maximum"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update timestamp"`
}

// Validate checks the nutrient key and that min does not exceed max
func (t *Target) Validate() error {
	if _, ok := LookupNutrient(t.Nutrient); !ok {
		return fmt.Errorf("unknown nutrient %q", t.Nutrient)
	}
	if t.Min != nil && t.Max != nil && *t.Min > *t.Max {
		return fmt.Errorf("minimum %v is greater than maximum %v", *t.Min, *t.Max)
	}
	return nil
}

// SummaryRow compares a day's total of one nutrient against its target
type SummaryRow struct {
	Nutrient string   `json:"nutrient" doc:"Nutrient key"`
	Label    string   `json:"label" doc:"Display label"`
	Unit     string   `json:"unit" doc:"Display unit"`
	Value    float64  `json:"value" doc:"Total for the day"`
	Min      *float64 `json:"min,omitempty" doc:"Daily minimum target"`
	Max      *float64 `json:"max,omitempty" doc:"Daily maximum target"`
}

// SummaryEntry is a diary food resolved to a name and its nutrition
type SummaryEntry struct {
	Food      *DiaryFood `json:"food" doc:"Logged diary food"`
	Name      string     `json:"name" doc:"Ingredient or recipe name"`
	Unit      string     `json:"unit" doc:"Unit of the quantity"`
	Nutrition Nutrition  `json:"nutrition" doc:"Nutrition of the logged quantity"`
}

// DaySummary is everything logged on a day with totals against targets
type DaySummary struct {
	Day     time.Time      `json:"day"`
	Rows    []SummaryRow   `json:"rows"`
	Entries []SummaryEntry `json:"entries"`
	Total   Nutrition      `json:"total"`
}

// ParseDay parses a YYYY-MM-DD diary day in UTC
func ParseDay(s string) (time.Time, error) {
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return day, nil
}
