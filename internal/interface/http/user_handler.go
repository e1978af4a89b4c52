package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/heshafoods/hesha-api/internal/application"
	repo "github.com/heshafoods/hesha-api/internal/domain/repository"
	"github.com/heshafoods/hesha-api/pkg/response"
	"github.com/heshafoods/hesha-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateAddressRequest struct {
	UserID    int64           `json:"user_id" binding:"required"`
	Addresses json.RawMessage `json:"addresses" binding:"required"`
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
		return
	}
	if err != nil {
		// 500 bodies carry the raw driver message, as the legacy API did.
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}, "user created successfully")
}

func (h *UserHandler) LogIn(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.LogIn(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	// The stored address is returned as written: an object after an order,
	// an array after an address update, null when never set.
	var address any
	if len(u.Address) > 0 {
		address = u.Address
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"address":      address,
		"is_logged_in": true,
	}, "login successful")
}

func (h *UserHandler) UpdateAddresses(c *gin.Context) {
	var req updateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.UpdateAddresses(c.Request.Context(), req.UserID, req.Addresses); err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "addresses updated successfully")
}
