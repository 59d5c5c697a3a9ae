package models

// IngredientBody is the writable part of an ingredient
type IngredientBody struct {
	Name        string    `json:"name" minLength:"1" maxLength:"200" required:"true" doc:"Ingredient name"`
	Description string    `json:"description,omitempty" maxLength:"1000" doc:"Free text description"`
	Nutrition   Nutrition `json:"nutrition" required:"true" doc:"Nutrition per 100 g"`
}

// CreateIngredientRequest represents a request to create an ingredient
type CreateIngredientRequest struct {
	Body IngredientBody
}

// UpdateIngredientRequest represents a request to replace an ingredient
type UpdateIngredientRequest struct {
	ID   string `path:"id" doc:"Ingredient ID"`
	Body IngredientBody
}

// IngredientIDRequest addresses a single ingredient
type IngredientIDRequest struct {
	ID string `path:"id" doc:"Ingredient ID"`
}

// IngredientResponse returns a single ingredient
type IngredientResponse struct {
	Body *Ingredient
}

// ListIngredientsResponse returns all ingredients
type ListIngredientsResponse struct {
	Body struct {
		Ingredients []*Ingredient `json:"ingredients" doc:"Ingredients ordered by name"`
	}
}

// ProductBody is the writable part of a product
type ProductBody struct {
	IngredientID string  `json:"ingredient_id" required:"true" doc:"Ingredient the product contains"`
	Name         string  `json:"name" minLength:"1" maxLength:"200" required:"true" doc:"Product name"`
	PackGrams    float64 `json:"pack_grams" exclusiveMinimum:"0" required:"true" doc:"Weight of one pack in grams"`
	Price        float64 `json:"price" minimum:"0" required:"true" doc:"Price of one pack"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Body ProductBody
}

// UpdateProductRequest represents a request to replace a product
type UpdateProductRequest struct {
	ID   string `path:"id" doc:"Product ID"`
	Body ProductBody
}

// ProductIDRequest addresses a single product
type ProductIDRequest struct {
	ID string `path:"id" doc:"Product ID"`
}

// ProductResponse returns a single product
type ProductResponse struct {
	Body *Product
}

// ListProductsResponse returns all products
type ListProductsResponse struct {
	Body struct {
		Products []*Product `json:"products" doc:"Products ordered by name"`
	}
}

// APIRootResponse lists the collections served under the API prefix
type APIRootResponse struct {
	Body map[string]string
}

// RecipeBody is the writable part of a recipe
type RecipeBody struct {
	Name        string            `json:"name" minLength:"1" maxLength:"200" required:"true" doc:"Recipe name"`
	Description string            `json:"description,omitempty" maxLength:"2000" doc:"Free text description"`
	Servings    float64           `json:"servings" exclusiveMinimum:"0" required:"true" doc:"Number of servings the recipe makes"`
	Components  []RecipeComponent `json:"components" required:"true" doc:"Ingredients of the recipe"`
}

// CreateRecipeRequest represents a request to create a recipe
type CreateRecipeRequest struct {
	Body RecipeBody
}

// RecipeIDRequest addresses a single recipe
type RecipeIDRequest struct {
	ID string `path:"id" doc:"Recipe ID"`
}

// RecipeDetail is a recipe with its nutrition per serving
type RecipeDetail struct {
	Recipe
	PerServing Nutrition `json:"per_serving" doc:"Nutrition of one serving"`
}

// RecipeResponse returns a single recipe
type RecipeResponse struct {
	Body RecipeDetail
}

// ListRecipesResponse returns all recipes
type ListRecipesResponse struct {
	Body struct {
		Recipes []*Recipe `json:"recipes" doc:"Recipes ordered by name"`
	}
}

// DiaryFoodBody is the writable part of a diary food
type DiaryFoodBody struct {
	Day          string  `json:"day" required:"true" doc:"Diary day (YYYY-MM-DD)"`
	Meal         string  `json:"meal" enum:"breakfast,lunch,dinner,snack" required:"true" doc:"Meal the food was eaten at"`
	IngredientID *string `json:"ingredient_id,omitempty" doc:"Ingredient eaten, quantity in grams"`
	RecipeID     *string `json:"recipe_id,omitempty" doc:"Recipe eaten, quantity in servings"`
	Quantity     float64 `json:"quantity" exclusiveMinimum:"0" required:"true" doc:"Grams of ingredient or servings of recipe"`
}

// CreateDiaryFoodRequest represents a request to log a food
type CreateDiaryFoodRequest struct {
	Body DiaryFoodBody
}

// ListDiaryFoodsRequest lists the foods logged on a day
type ListDiaryFoodsRequest struct {
	Date string `query:"date" required:"true" doc:"Diary day (YYYY-MM-DD)"`
}

// DiaryFoodIDRequest addresses a single diary food
type DiaryFoodIDRequest struct {
	ID string `path:"id" doc:"Diary food ID"`
}

// DiaryFoodResponse returns a single diary food
type DiaryFoodResponse struct {
	Body *DiaryFood
}

// ListDiaryFoodsResponse returns the foods logged on a day
type ListDiaryFoodsResponse struct {
	Body struct {
		DiaryFoods []*DiaryFood `json:"diary_foods" doc:"Foods in the order they were logged"`
	}
}

// ListTargetsResponse returns all configured targets
type ListTargetsResponse struct {
	Body struct {
		Targets []*Target `json:"targets" doc:"Targets in catalogue order"`
	}
}

// PutTargetRequest sets the target for a nutrient
type PutTargetRequest struct {
	Nutrient string `path:"nutrient" doc:"Nutrient key"`
	Body     struct {
		Min *float64 `json:"min,omitempty" minimum:"0" doc:"Daily minimum"`
		Max *float64 `json:"max,omitempty" minimum:"0" doc:"Daily maximum"`
	}
}

// TargetNutrientRequest addresses the target of a nutrient
type TargetNutrientRequest struct {
	Nutrient string `path:"nutrient" doc:"Nutrient key"`
}

// TargetResponse returns a single target
type TargetResponse struct {
	Body *Target
}

// DaySummaryRequest asks for the summary of a diary day
type DaySummaryRequest struct {
	Date string `path:"date" doc:"Diary day (YYYY-MM-DD)"`
}

// SummaryRowView is a summary row with its display strings
type SummaryRowView struct {
	SummaryRow
	Display string `json:"display" doc:"Value annotated with target percentages, HTML"`
	Percent string `json:"percent" doc:"Value as min%-max% of the targets"`
}

// DaySummaryResponse returns a diary day summary
type DaySummaryResponse struct {
	Body struct {
		Day     string           `json:"day" doc:"Diary day"`
		Rows    []SummaryRowView `json:"rows" doc:"Totals per nutrient against targets"`
		Entries []SummaryEntry   `json:"entries" doc:"Foods logged on the day"`
		Total   Nutrition        `json:"total" doc:"Total nutrition of the day"`
	}
}

// ExportDiaryRequest asks for a spreadsheet of a range of diary days
type ExportDiaryRequest struct {
	Body struct {
		From string `json:"from" required:"true" doc:"First day (YYYY-MM-DD)"`
		To   string `json:"to" required:"true" doc:"Last day, inclusive (YYYY-MM-DD)"`
	}
}

// ExportDiaryResponse returns where the exported spreadsheet can be fetched
type ExportDiaryResponse struct {
	Body struct {
		Key         string `json:"key" doc:"Object key of the export"`
		DownloadURL string `json:"download_url" doc:"Pre-signed download URL"`
		ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
	}
}
