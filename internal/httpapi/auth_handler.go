package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focuswave/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, fromError(err))
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Token: result.Token,
		User:  userResponse{ID: result.User.ID, Email: result.User.Email},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, fromError(err))
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token: result.Token,
		User:  userResponse{ID: result.User.ID, Email: result.User.Email},
	})
}
