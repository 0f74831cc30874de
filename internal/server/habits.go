package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/generator"
	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/validation"
)

type habitCreateRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	TargetDaysPerWeek *int    `json:"target_days_per_week"`
}

// createHabit stores a new habit and immediately persists its generated
// roadmap and resource batch. The batch is not transactional: the first
// failed insert aborts the remainder.
func (s *Server) createHabit(c *gin.Context) {
	var req habitCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := constants.DefaultTargetDaysPerWeek
	if req.TargetDaysPerWeek != nil {
		target = *req.TargetDaysPerWeek
	}

	habit := models.Habit{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Description:       req.Description,
		TargetDaysPerWeek: target,
		Progress:          0,
		CreatedAt:         time.Now().UTC(),
	}

	if err := validation.ValidateHabit(habit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.AddHabit(habit); err != nil {
		storeError(c, err)
		return
	}

	items, resources := generator.Generate(habit.ID, habit.Name, habit.Description)
	for _, item := range items {
		if err := s.store.AddRoadmapItem(item); err != nil {
			storeError(c, err)
			return
		}
	}
	for _, res := range resources {
		if err := s.store.AddResource(res); err != nil {
			storeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"habit_id": habit.ID,
		"message":  "Habit created with roadmap and resources",
	})
}

func (s *Server) listHabits(c *gin.Context) {
	habits, err := s.store.GetAllHabits()
	if err != nil {
		storeError(c, err)
		return
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	c.JSON(http.StatusOK, habits)
}

func (s *Server) getRoadmap(c *gin.Context) {
	items, err := s.store.GetRoadmapForHabit(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if items == nil {
		items = []models.RoadmapItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getResources(c *gin.Context) {
	resources, err := s.store.GetResourcesForHabit(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	c.JSON(http.StatusOK, resources)
}
