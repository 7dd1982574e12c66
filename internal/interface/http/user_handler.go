package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/xpnews/xpnews-backend/internal/application"
	"github.com/xpnews/xpnews-backend/internal/domain/entity"
	"github.com/xpnews/xpnews-backend/pkg/pagination"
	"github.com/xpnews/xpnews-backend/pkg/response"
	"github.com/xpnews/xpnews-backend/pkg/validation"
)

// UserService is the slice of the application service the handlers consume.
type UserService interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	FindAll(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[entity.UserProjection], error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, currentPassword, newPassword, confirmationPassword string) error
	UpdateUser(ctx context.Context, id int64, newData *entity.User) error
	Delete(ctx context.Context, id int64) error
	FindAllWithClient(ctx context.Context) (*pagination.Page[entity.UserProjection], error)
}

type UserHandler struct {
	Svc    UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type userCreateRequest struct {
	FullName string `json:"fullName" binding:"required,max=50"`
	Username string `json:"username" binding:"required,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userUpdateRequest struct {
	FullName string `json:"fullName" binding:"required,max=50"`
	Username string `json:"username" binding:"required,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"omitempty,oneof=ROLE_ADMIN ROLE_CLIENT"`
}

type updatePasswordRequest struct {
	CurrentPassword      string `json:"currentPassword" binding:"required"`
	NewPassword          string `json:"newPassword" binding:"required"`
	ConfirmationPassword string `json:"confirmationPassword" binding:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), toUser(req))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(u))
}

func (h *UserHandler) FindAll(c *gin.Context) {
	pageable := parsePageable(c)
	page, err := h.Svc.FindAll(c.Request.Context(), pageable)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// FindAllWithClient serves the alternative read path backed by the remote
// user-listing service.
func (h *UserHandler) FindAllWithClient(c *gin.Context) {
	page, err := h.Svc.FindAllWithClient(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) FindByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(u))
}

func (h *UserHandler) FindByUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		response.Error(c, http.StatusBadRequest, "invalid request", map[string]string{"username": "is required"})
		return
	}
	u, err := h.Svc.FindByUsername(c.Request.Context(), username)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(u))
}

func (h *UserHandler) FindByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, "invalid request", map[string]string{"email": "is required"})
		return
	}
	u, err := h.Svc.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(u))
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdatePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword, req.ConfirmationPassword); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdateUser(c.Request.Context(), id, updateToUser(req)); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// renderError maps domain errors to deterministic status codes; anything else
// is logged and hidden behind a generic 500.
func (h *UserHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrDuplicateUser):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrPasswordConfirmation), errors.Is(err, application.ErrPasswordMismatch):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrDatabase):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	default:
		h.Logger.WithFields(logrus.Fields{
			"error":  err.Error(),
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("unhandled error")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid request", map[string]string{"id": "must be a positive integer"})
		return 0, false
	}
	return id, true
}

func parsePageable(c *gin.Context) pagination.Pageable {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(pagination.DefaultSize)))
	return pagination.NewPageable(page, size)
}
