package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabbinur71/quickbite-frontend/internal/cart"
	"github.com/rabbinur71/quickbite-frontend/internal/localstore"
	"github.com/rabbinur71/quickbite-frontend/internal/middleware"
)

type Handler struct {
	db             localstore.Store
	whatsappNumber string
}

func NewHandler(db localstore.Store, whatsappNumber string) *Handler {
	return &Handler{db: db, whatsappNumber: whatsappNumber}
}

// Confirm is the sole side-effecting step of checkout: build the message and
// deep link, empty the cart, and hand the link back for the browser to
// navigate to. There is no server acknowledgment and no retry; a double
// click can at most produce the message twice.
func (h *Handler) Confirm(c *gin.Context) {
	var address Address

	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if errs := Validate(address); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	ctx := c.Request.Context()
	store := cart.Open(ctx, h.db, middleware.SessionID(c))

	items := store.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	message := Message(items, store.TotalPrice(), address)
	link := Link(h.whatsappNumber, message)

	if err := store.Clear(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"url":     link,
	})
}
