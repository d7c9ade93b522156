package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type RecordHandler struct {
	records services.RecordService
}

func NewRecordHandler(records services.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// @Summary      List medical records
// @Tags         Records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.MedicalRecord
// @Router       /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	list, err := h.records.List()
	if err != nil {
		log.Printf("[records][list] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load records"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Get a patient's medical record
// @Tags         Records
// @Produce      json
// @Security     BearerAuth
// @Param        patientId  path      int  true  "Patient ID"
// @Success      200        {object}  models.MedicalRecord
// @Failure      404        {object}  map[string]string
// @Router       /records/{patientId} [get]
func (h *RecordHandler) GetByPatient(c *gin.Context) {
	patientID, ok := pathID(c, "patientId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}
	rec, err := h.records.GetByPatient(patientID)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medical record not found"})
			return
		}
		log.Printf("[records][get] failed patient=%d: err=%v", patientID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load record"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Get the signed-in patient's own medical record
// @Tags         Records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.MedicalRecord
// @Failure      404  {object}  map[string]string
// @Router       /records/me [get]
func (h *RecordHandler) GetOwn(c *gin.Context) {
	patientID, ok := getIntFromCtx(c, "patient_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	rec, err := h.records.GetByPatient(patientID)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medical record not found"})
			return
		}
		log.Printf("[records][own] failed patient=%d: err=%v", patientID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load record"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Update a patient's medical record
// @Description  Partial update; absent fields keep their stored value
// @Tags         Records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        patientId  path      int                         true  "Patient ID"
// @Param        record     body      models.MedicalRecordUpdate  true  "Fields to change"
// @Success      200        {object}  models.MedicalRecord
// @Failure      404        {object}  map[string]string
// @Router       /records/{patientId} [patch]
func (h *RecordHandler) Update(c *gin.Context) {
	patientID, ok := pathID(c, "patientId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}
	var upd models.MedicalRecordUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.records.Update(patientID, &upd)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Printf("[records][update] failed patient=%d: err=%v", patientID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Delete a patient's medical record
// @Tags         Records
// @Produce      json
// @Security     BearerAuth
// @Param        patientId  path      int  true  "Patient ID"
// @Success      200        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /records/{patientId} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	patientID, ok := pathID(c, "patientId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}
	if err := h.records.Delete(patientID); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medical record not found"})
			return
		}
		log.Printf("[records][delete] failed patient=%d: err=%v", patientID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medical record deleted"})
}
