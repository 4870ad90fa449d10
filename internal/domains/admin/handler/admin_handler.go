package handler

import (
	"crypto/subtle"
	"net/http"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/bcrypt"
)

// LoginReq is the admin gate input. The gate is a shared secret, not a
// user system: there are no accounts, just one password.
type LoginReq struct {
	Password string `json:"password"`
}

func (r LoginReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

type AdminHandler struct {
	cfg     config.AdminConfig
	manager *jwt.Manager
}

func NewAdminHandler(cfg config.AdminConfig, manager *jwt.Manager) *AdminHandler {
	return &AdminHandler{cfg: cfg, manager: manager}
}

// Login - POST /admin/login
// Issues a session token when the shared secret matches. Prefers the
// bcrypt hash when one is configured; the plain-text variant exists
// for local development only.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeMissingFields)
		return
	}
	if err := req.Validate(); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeMissingFields)
		return
	}

	if !h.passwordMatches(req.Password) {
		response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized)
		return
	}

	token, err := h.manager.GenerateToken("admin")
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.CodeServerError)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"token": token})
}

func (h *AdminHandler) passwordMatches(password string) bool {
	if h.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.PasswordHash), []byte(password)) == nil
	}
	if h.cfg.Password != "" {
		return subtle.ConstantTimeCompare([]byte(h.cfg.Password), []byte(password)) == 1
	}
	return false
}
