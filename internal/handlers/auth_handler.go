package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	ucAuth "github.com/BruksfildServices01/salon-booking/internal/usecase/auth"
)

type AuthHandler struct {
	register     *ucAuth.Register
	login        *ucAuth.Login
	sessions     *session.Manager
	cookieSecure bool
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	sessions *session.Manager,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		login:        login,
		sessions:     sessions,
		cookieSecure: cookieSecure,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user owner"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type meResponse struct {
	Success         bool `json:"success"`
	IsAuthenticated bool `json:"isAuthenticated"`
	session.Identity
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		fail(c, err)
		return
	}

	middleware.SetSessionCookie(c, res.Token, h.sessions, h.cookieSecure)
	httpresp.Created(c, "User registered successfully", res.User)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		fail(c, err)
		return
	}

	middleware.SetSessionCookie(c, res.Token, h.sessions, h.cookieSecure)
	httpresp.OK(c, "Login successful", res.User)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.cookieSecure)
	httpresp.OK(c, "Logout successful", nil)
}

// Me echoes the identity carried by the session; it does not reload the user.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, meResponse{
		Success:         true,
		IsAuthenticated: true,
		Identity:        middleware.CurrentIdentity(c),
	})
}
