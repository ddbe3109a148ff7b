package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

// --------- Requests ---------

type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type UpdateDoctorRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	specialty := strings.ToLower(strings.TrimSpace(c.Query("specialty")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio

	q := h.db.Model(&models.Doctor{})

	if specialty != "" {
		q = q.Where("LOWER(specialty) = ?", specialty)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	var doctors []models.Doctor
	if err := q.
		Order("id ASC").
		Find(&doctors).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_doctors"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	doctor := models.Doctor{
		Name:      strings.TrimSpace(req.Name),
		Specialty: strings.ToLower(strings.TrimSpace(req.Specialty)),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Active:    true,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_doctor"})
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := h.db.First(&doctor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_doctor"})
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		doctor.Name = strings.TrimSpace(*req.Name)
	}
	if req.Specialty != nil {
		doctor.Specialty = strings.ToLower(strings.TrimSpace(*req.Specialty))
	}
	if req.Email != nil {
		doctor.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		doctor.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}
