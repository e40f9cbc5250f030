package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
	"posada/internal/models"
	"posada/internal/services"
)

// ItemHandler handles catalog requests
type ItemHandler struct {
	itemService services.ItemServicer
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService services.ItemServicer) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents the request payload for creating an item.
// Image is an already-encoded data URI from the upload endpoint; when
// omitted the default placeholder is used.
type CreateItemRequest struct {
	Name     string   `json:"name" binding:"required,max=200"`
	Price    *float64 `json:"price" binding:"required"`
	Category string   `json:"category" binding:"required,item_category"`
	Image    string   `json:"image"`
}

// UpdateItemRequest represents the request payload for editing an item
type UpdateItemRequest struct {
	Name  string   `json:"name" binding:"required,max=200"`
	Price *float64 `json:"price" binding:"required"`
}

// ItemResponse represents an item in the response
type ItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

// CreateItem adds an item to the catalog
// @Summary     Create an item
// @Description Add a new item to the catalog
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateItemRequest true "Item details"
// @Success     201 {object} ItemResponse "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.itemService.CreateItem(req.Name, *req.Price, models.Category(req.Category), req.Image)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// ListItems returns the catalog
// @Summary     List items
// @Description Get the full item catalog in insertion order
// @Tags        items
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} ItemResponse "Catalog"
// @Router      /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	items := h.itemService.ListItems()
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItem returns a single catalog item
// @Summary     Get item
// @Description Get a catalog item by ID
// @Tags        items
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     200 {object} ItemResponse "Item"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.itemService.GetItemByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateItem edits an item's name and price
// @Summary     Update item
// @Description Replace an item's name and price
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Param       request body UpdateItemRequest true "New name and price"
// @Success     200 {object} ItemResponse "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input or item ID"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.itemService.EditItem(id, req.Name, *req.Price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem removes an item from the catalog
// @Summary     Delete item
// @Description Remove an item; past transactions for it are kept
// @Tags        items
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     200 {object} MessageResponse "Removal result"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Router      /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	removed, err := h.itemService.DeleteItem(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// UploadImage encodes an item image for later use in CreateItem
// @Summary     Upload item image
// @Description Encode an image upload into the data URI stored on items
// @Tags        items
// @Accept      mpfd
// @Produce     json
// @Security    BearerAuth
// @Param       image formData file true "Image file"
// @Success     200 {object} MessageResponse "Encoded image reference"
// @Failure     400 {object} ErrorResponse "Not an image"
// @Failure     413 {object} ErrorResponse "Image too large"
// @Router      /items/image [post]
func (h *ItemHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "image file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	encoded, err := h.itemService.EncodeImage(data, header.Header.Get("Content-Type"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": encoded})
}
