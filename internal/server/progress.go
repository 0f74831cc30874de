package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/streak"
	"github.com/habitgenius/habitgenius/internal/validation"
)

type progressCreateRequest struct {
	HabitID     string  `json:"habit_id"`
	Note        *string `json:"note"`
	ImageBase64 *string `json:"image_base64"`
}

func (s *Server) addProgress(c *gin.Context) {
	var req progressCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	record := models.Progress{
		ID:          uuid.New().String(),
		HabitID:     req.HabitID,
		Note:        req.Note,
		ImageBase64: req.ImageBase64,
		TakenAt:     now,
		CreatedAt:   now,
	}

	if err := validation.ValidateProgress(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.AddProgress(record); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress_id": record.ID})
}

// listProgress returns a habit's check-ins along with the current
// consecutive-day streak anchored at today.
func (s *Server) listProgress(c *gin.Context) {
	records, err := s.store.GetProgressForHabit(c.Param("habit_id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if records == nil {
		records = []models.Progress{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  records,
		"streak": streak.Compute(records, time.Now()),
	})
}
