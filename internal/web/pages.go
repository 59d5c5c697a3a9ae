// Package web serves the server-rendered diary pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/RMahshie/pants/internal/nutrition"
	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/RMahshie/pants/pkg/visuals"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "about", "diary", "ingredients", "recipes", "targets", "products"}

// Pages renders the HTML views of the diary
type Pages struct {
	templates    map[string]*template.Template
	nutritionSvc nutrition.Service
	ingredients  repository.IngredientRepository
	recipes      repository.RecipeRepository
	targets      repository.TargetRepository
	products     repository.ProductRepository
	version      string
	now          func() time.Time
}

// Config holds what the pages need besides the services
type Config struct {
	BarStyle visuals.BarStyle
	Version  string
}

// NewPages parses the embedded templates with the visuals helpers registered
func NewPages(cfg Config, nutritionSvc nutrition.Service, ingredients repository.IngredientRepository, recipes repository.RecipeRepository, targets repository.TargetRepository, products repository.ProductRepository) (*Pages, error) {
	funcs := visuals.FuncMap(cfg.BarStyle)

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name+".html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Pages{
		templates:    templates,
		nutritionSvc: nutritionSvc,
		ingredients:  ingredients,
		recipes:      recipes,
		targets:      targets,
		products:     products,
		version:      cfg.Version,
		now:          time.Now,
	}, nil
}

// Routes mounts the pages on r
func (p *Pages) Routes(r chi.Router) {
	r.Get("/", p.index)
	r.Get("/about/", p.about)
	r.Get("/diary/", p.today)
	r.Get("/diary/{date}/", p.diary)
	r.Get("/ingredients/", p.ingredientList)
	r.Get("/recipes/", p.recipeList)
	r.Get("/targets/", p.targetList)
	r.Get("/products/", p.productList)
}

// currentDay is today's diary day. Days are UTC dates throughout.
func (p *Pages) currentDay() time.Time {
	y, m, d := p.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p *Pages) today(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/diary/"+p.currentDay().Format(models.DateLayout)+"/", http.StatusFound)
}

func (p *Pages) index(w http.ResponseWriter, r *http.Request) {
	day := p.currentDay()
	summary, err := p.nutritionSvc.DaySummary(r.Context(), day)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	p.render(w, r, "index", struct {
		Title   string
		Day     string
		Summary *models.DaySummary
	}{
		Title:   "Today",
		Day:     day.Format(models.DateLayout),
		Summary: summary,
	})
}

func (p *Pages) about(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "about", struct {
		Title   string
		Version string
	}{
		Title:   "About",
		Version: p.version,
	})
}

func (p *Pages) diary(w http.ResponseWriter, r *http.Request) {
	day, err := models.ParseDay(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	summary, err := p.nutritionSvc.DaySummary(r.Context(), day)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	p.render(w, r, "diary", struct {
		Title    string
		Previous string
		Next     string
		Summary  *models.DaySummary
	}{
		Title:    day.Format("Monday 2 January 2006"),
		Previous: day.AddDate(0, 0, -1).Format(models.DateLayout),
		Next:     day.AddDate(0, 0, 1).Format(models.DateLayout),
		Summary:  summary,
	})
}

func (p *Pages) ingredientList(w http.ResponseWriter, r *http.Request) {
	ingredients, err := p.ingredients.List(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}

	p.render(w, r, "ingredients", struct {
		Title       string
		Ingredients []*models.Ingredient
	}{
		Title:       "Ingredients",
		Ingredients: ingredients,
	})
}

type recipeView struct {
	Recipe     *models.Recipe
	PerServing models.Nutrition
}

func (p *Pages) recipeList(w http.ResponseWriter, r *http.Request) {
	recipes, err := p.recipes.List(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}

	views := make([]recipeView, 0, len(recipes))
	for _, recipe := range recipes {
		perServing, err := p.nutritionSvc.RecipeNutrition(r.Context(), recipe)
		if err != nil {
			p.fail(w, r, err)
			return
		}
		views = append(views, recipeView{Recipe: recipe, PerServing: perServing})
	}

	p.render(w, r, "recipes", struct {
		Title   string
		Recipes []recipeView
	}{
		Title:   "Recipes",
		Recipes: views,
	})
}

type targetView struct {
	Label, Unit string
	Min, Max    string
}

func (p *Pages) targetList(w http.ResponseWriter, r *http.Request) {
	targets, err := p.targets.List(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}
	byNutrient := make(map[string]*models.Target, len(targets))
	for _, t := range targets {
		byNutrient[t.Nutrient] = t
	}

	// every nutrient is listed, set or not
	views := make([]targetView, 0, len(models.Nutrients))
	for _, n := range models.Nutrients {
		view := targetView{Label: n.Label, Unit: n.Unit}
		if t, ok := byNutrient[n.Key]; ok {
			if t.Min != nil {
				view.Min = visuals.FormatFloat(*t.Min)
			}
			if t.Max != nil {
				view.Max = visuals.FormatFloat(*t.Max)
			}
		}
		views = append(views, view)
	}

	p.render(w, r, "targets", struct {
		Title   string
		Targets []targetView
	}{
		Title:   "Targets",
		Targets: views,
	})
}

type productView struct {
	Product    *models.Product
	Ingredient string
	// Hundreds is the pack size in units of 100 g
	Hundreds float64
	PackKcal float64
}

func (p *Pages) productList(w http.ResponseWriter, r *http.Request) {
	products, err := p.products.List(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		id, err := uuid.Parse(product.IngredientID)
		if err != nil {
			p.fail(w, r, fmt.Errorf("product %s: %w", product.ID, err))
			return
		}
		ids = append(ids, id)
	}
	ingredients, err := p.ingredients.GetByIDs(r.Context(), ids)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	views := make([]productView, 0, len(products))
	for i, product := range products {
		view := productView{Product: product, Hundreds: product.PackGrams / 100}
		if ingredient, ok := ingredients[ids[i]]; ok {
			view.Ingredient = ingredient.Name
			view.PackKcal = ingredient.Nutrition.Kcal * view.Hundreds
		}
		views = append(views, view)
	}

	p.render(w, r, "products", struct {
		Title    string
		Products []productView
	}{
		Title:    "Products",
		Products: views,
	})
}

// render buffers the page; a template error still yields a clean 500
func (p *Pages) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := p.templates[name].Execute(&buf, data); err != nil {
		p.fail(w, r, fmt.Errorf("failed to render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to serve page")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
