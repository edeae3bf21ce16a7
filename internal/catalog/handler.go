package catalog

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rabbinur71/quickbite-frontend/internal/api"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// statusFor maps an upstream failure onto our response code, defaulting to
// 502 for network-level failures that never produced a status.
func statusFor(err error) int {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Status != 0 {
		return reqErr.Status
	}
	return http.StatusBadGateway
}

// --------------------------------------------------
// Storefront (public)
// --------------------------------------------------

func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.service.AvailableMenuItems(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListSpecials(c *gin.Context) {
	orders, err := h.service.SpecialOrders(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// --------------------------------------------------
// Admin: menu items
// --------------------------------------------------

func (h *AdminHandler) ListMenuItems(c *gin.Context) {
	items, err := h.service.MenuItems(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	fields, images, ok := h.bindItemForm(c)
	if !ok {
		return
	}

	item, err := h.service.CreateMenuItem(c.Request.Context(), fields, images)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AdminHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.UpdateMenuItem(c.Request.Context(), id, fields)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMenuItem(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

// --------------------------------------------------
// Admin: special orders
// --------------------------------------------------

func (h *AdminHandler) ListSpecialOrders(c *gin.Context) {
	orders, err := h.service.AllSpecialOrders(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) CreateSpecialOrder(c *gin.Context) {
	fields, images, ok := h.bindItemForm(c)
	if !ok {
		return
	}

	order, err := h.service.CreateSpecialOrder(c.Request.Context(), fields, images)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *AdminHandler) UpdateSpecialOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order, err := h.service.UpdateSpecialOrder(c.Request.Context(), id, fields)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) DeleteSpecialOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSpecialOrder(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "special order deleted"})
}

// bindItemForm reads the admin create form: every plain field is forwarded
// verbatim, images pass the pre-network gate first.
func (h *AdminHandler) bindItemForm(c *gin.Context) (map[string]string, []*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return nil, nil, false
	}

	fields := make(map[string]string, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	images := form.File["images"]
	if err := ValidateImages(images); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return fields, images, true
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
