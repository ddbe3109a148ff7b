package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type SessionTypeHandler struct {
	db *gorm.DB
}

func NewSessionTypeHandler(db *gorm.DB) *SessionTypeHandler {
	return &SessionTypeHandler{db: db}
}

// --------- Requests ---------

type CreateSessionTypeRequest struct {
	Code  string `json:"code" binding:"required"`
	Label string `json:"label" binding:"required"`
}

type UpdateSessionTypeRequest struct {
	Label  *string `json:"label,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *SessionTypeHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Model(&models.SessionType{})

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	var types []models.SessionType
	if err := q.
		Order("id ASC").
		Find(&types).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_session_types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *SessionTypeHandler) Create(c *gin.Context) {
	var req CreateSessionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sessionType := models.SessionType{
		Code:   strings.ToLower(strings.TrimSpace(req.Code)),
		Label:  strings.TrimSpace(req.Label),
		Active: true,
	}

	if err := h.db.Create(&sessionType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_session_type"})
		return
	}

	c.JSON(http.StatusCreated, sessionType)
}

func (h *SessionTypeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var sessionType models.SessionType
	if err := h.db.First(&sessionType, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "session_type_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_session_type"})
		return
	}

	var req UpdateSessionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Label != nil {
		sessionType.Label = strings.TrimSpace(*req.Label)
	}
	if req.Active != nil {
		sessionType.Active = *req.Active
	}

	if err := h.db.Save(&sessionType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_session_type"})
		return
	}

	c.JSON(http.StatusOK, sessionType)
}
