package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type PatientHandler struct {
	db *gorm.DB
}

func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{db: db}
}

// --------- Requests ---------

type CreatePatientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// ======================================================
// LIST PATIENTS (RECEPÇÃO)
// ======================================================
func (h *PatientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Patient{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var patients []models.Patient
	if err := q.
		Order("created_at DESC").
		Find(&patients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_patients",
		})
		return
	}

	c.JSON(http.StatusOK, patients)
}

// ======================================================
// CREATE (GET-OR-CREATE POR TELEFONE)
// ======================================================
func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail com domínio inválido.")
		return
	}

	phone := strings.TrimSpace(req.Phone)

	// Paciente não tem login; o telefone é a identidade. Repetiu o
	// telefone, é a mesma pessoa — atualiza em vez de duplicar.
	var patient models.Patient
	err := h.db.Where("phone = ?", phone).First(&patient).Error

	switch {
	case err == nil:
		patient.Name = strings.TrimSpace(req.Name)
		if email != "" {
			patient.Email = email
		}
		if req.Notes != "" {
			patient.Notes = req.Notes
		}
		if err := h.db.Save(&patient).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_patient"})
			return
		}
		c.JSON(http.StatusOK, patient)

	case err == gorm.ErrRecordNotFound:
		patient = models.Patient{
			Name:  strings.TrimSpace(req.Name),
			Phone: phone,
			Email: email,
			Notes: req.Notes,
		}
		if err := h.db.Create(&patient).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_patient"})
			return
		}
		c.JSON(http.StatusCreated, patient)

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_patient"})
	}
}

func (h *PatientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_patient"})
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		patient.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		patient.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email", "E-mail com domínio inválido.")
			return
		}
		patient.Email = email
	}
	if req.Notes != nil {
		patient.Notes = *req.Notes
	}

	if err := h.db.Save(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_patient"})
		return
	}

	c.JSON(http.StatusOK, patient)
}
