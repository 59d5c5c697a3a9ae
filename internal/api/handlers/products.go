package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// ProductHandler handles product price HTTP requests
type ProductHandler struct {
	repo        repository.ProductRepository
	ingredients repository.IngredientRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo repository.ProductRepository, ingredients repository.IngredientRepository) *ProductHandler {
	return &ProductHandler{
		repo:        repo,
		ingredients: ingredients,
	}
}

// ListProducts returns all products
func (h *ProductHandler) ListProducts(ctx context.Context, _ *struct{}) (*models.ListProductsResponse, error) {
	products, err := h.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "Product", "list")
	}

	resp := &models.ListProductsResponse{}
	resp.Body.Products = products
	return resp, nil
}

// CreateProduct stores a new priced pack of an ingredient
func (h *ProductHandler) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error) {
	product := &models.Product{}
	if err := h.apply(ctx, product, req.Body); err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, productStoreError(err, "create")
	}

	log.Info().Str("productID", product.ID).Str("ingredientID", product.IngredientID).Float64("price", product.Price).Msg("Product created")
	return &models.ProductResponse{Body: product}, nil
}

// GetProduct returns a single product
func (h *ProductHandler) GetProduct(ctx context.Context, req *models.ProductIDRequest) (*models.ProductResponse, error) {
	id, err := parseID(req.ID, "product")
	if err != nil {
		return nil, err
	}

	product, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product", "get")
	}
	return &models.ProductResponse{Body: product}, nil
}

// UpdateProduct replaces the ingredient, name, pack size and price of a product
func (h *ProductHandler) UpdateProduct(ctx context.Context, req *models.UpdateProductRequest) (*models.ProductResponse, error) {
	id, err := parseID(req.ID, "product")
	if err != nil {
		return nil, err
	}

	product, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product", "get")
	}
	if err := h.apply(ctx, product, req.Body); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, productStoreError(err, "update")
	}

	log.Info().Str("productID", product.ID).Float64("price", product.Price).Msg("Product updated")
	return &models.ProductResponse{Body: product}, nil
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(ctx context.Context, req *models.ProductIDRequest) (*struct{}, error) {
	id, err := parseID(req.ID, "product")
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "Product", "delete")
	}

	log.Info().Str("productID", id.String()).Msg("Product deleted")
	return nil, nil
}

// apply validates body and copies it onto product
func (h *ProductHandler) apply(ctx context.Context, product *models.Product, body models.ProductBody) error {
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return huma.Error400BadRequest("Product name must not be empty")
	}
	if body.PackGrams <= 0 {
		return huma.Error400BadRequest("Pack size must be greater than zero")
	}
	if body.Price < 0 {
		return huma.Error400BadRequest("Price must not be negative")
	}

	ingredientID, err := parseID(body.IngredientID, "ingredient")
	if err != nil {
		return err
	}
	if _, err := h.ingredients.GetByID(ctx, ingredientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return huma.Error400BadRequest("Product refers to an unknown ingredient", err)
		}
		return storeError(err, "Ingredient", "get")
	}

	product.IngredientID = ingredientID.String()
	product.Name = name
	product.PackGrams = body.PackGrams
	product.Price = body.Price
	return nil
}

// productStoreError reports an ingredient removed since apply checked it as a bad request
func productStoreError(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) && action == "create" {
		return huma.Error400BadRequest("Product refers to an unknown ingredient", err)
	}
	return storeError(err, "Product", action)
}
