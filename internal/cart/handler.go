package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rabbinur71/quickbite-frontend/internal/localstore"
	"github.com/rabbinur71/quickbite-frontend/internal/middleware"
)

type Handler struct {
	db localstore.Store
}

func NewHandler(db localstore.Store) *Handler {
	return &Handler{db: db}
}

func (h *Handler) open(c *gin.Context) *Store {
	return Open(c.Request.Context(), h.db, middleware.SessionID(c))
}

func (h *Handler) respond(c *gin.Context, store *Store) {
	c.JSON(http.StatusOK, gin.H{
		"items":      store.Items(),
		"isOpen":     store.IsOpen(),
		"totalPrice": store.TotalPrice(),
		"totalItems": store.TotalItems(),
	})
}

func (h *Handler) Get(c *gin.Context) {
	h.respond(c, h.open(c))
}

// Add accepts the flat line record the storefront posts when a dish or a
// package goes into the cart.
func (h *Handler) Add(c *gin.Context) {
	var rec lineRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if rec.Quantity == 0 {
		rec.Quantity = 1
	}

	line, err := decodeLine(rec)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.open(c)
	if err := store.Add(c.Request.Context(), line); err != nil {
		if errors.Is(err, ErrInvalidLine) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	h.respond(c, store)
}

type updateQuantityRequest struct {
	ID       int      `json:"id"`
	Type     LineType `json:"type"`
	Quantity int      `json:"quantity"`
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	store := h.open(c)
	if err := store.UpdateQuantity(c.Request.Context(), req.ID, req.Type, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	h.respond(c, store)
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	lineType := LineType(c.Param("type"))
	if lineType != LineMenu && lineType != LineSpecial {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line type"})
		return
	}

	store := h.open(c)
	if err := store.Remove(c.Request.Context(), id, lineType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	h.respond(c, store)
}

func (h *Handler) Clear(c *gin.Context) {
	store := h.open(c)
	if err := store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	h.respond(c, store)
}

func (h *Handler) Toggle(c *gin.Context) {
	store := h.open(c)
	if err := store.Toggle(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	h.respond(c, store)
}

type setOpenRequest struct {
	IsOpen bool `json:"isOpen"`
}

func (h *Handler) SetOpen(c *gin.Context) {
	var req setOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	store := h.open(c)
	if err := store.SetOpen(c.Request.Context(), req.IsOpen); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	h.respond(c, store)
}
