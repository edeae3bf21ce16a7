package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	session *Session
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	result := h.session.Login(c.Request.Context(), req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    h.session.CurrentUser(),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	h.session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me reports the current admin profile; the guard has already rejected
// unauthenticated callers by the time this runs.
func (h *Handler) Me(c *gin.Context) {
	user := h.session.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
