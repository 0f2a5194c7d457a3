package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodiesapp/backend/internal/models"
	"github.com/foodiesapp/backend/internal/service"
	"github.com/foodiesapp/backend/internal/types"
)

type MealHandler struct {
	mealService service.IMealService
	storage     service.IStorage
}

func NewMealHandler(mealService service.IMealService, storage service.IStorage) *MealHandler {
	return &MealHandler{
		mealService: mealService,
		storage:     storage,
	}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/:slug", h.GetMeal)
		meals.POST("", h.CreateMeal)
	}
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	meals, err := h.mealService.List(c.Request.Context())
	if err != nil {
		log.Printf("[MealHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}

	responses := make([]types.MealResponse, len(meals))
	for i := range meals {
		responses[i] = h.toResponse(&meals[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": responses,
	})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	slug := c.Param("slug")

	meal, err := h.mealService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		log.Printf("[MealHandler] get %s failed: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}

	c.JSON(http.StatusOK, h.toResponse(meal))
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req types.CreateMealRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded image"})
		return
	}
	defer func() { _ = file.Close() }()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded image"})
		return
	}

	draft := &types.MealDraft{
		Title:            req.Title,
		Summary:          req.Summary,
		Instructions:     req.Instructions,
		Creator:          req.Creator,
		CreatorEmail:     req.CreatorEmail,
		ImageData:        imageData,
		ImageFileName:    fileHeader.Filename,
		ImageContentType: fileHeader.Header.Get("Content-Type"),
	}

	meal, err := h.mealService.Save(c.Request.Context(), draft)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		log.Printf("[MealHandler] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"meal": h.toResponse(meal),
	})
}

func (h *MealHandler) toResponse(meal *models.Meal) types.MealResponse {
	return types.MealResponse{
		ID:           meal.ID,
		Title:        meal.Title,
		Slug:         meal.Slug,
		Summary:      meal.Summary,
		Instructions: meal.Instructions,
		Creator:      meal.Creator,
		CreatorEmail: meal.CreatorEmail,
		Image:        meal.Image,
		ImageURL:     h.storage.PublicURL(meal.Image),
	}
}
