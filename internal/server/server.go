// Package server exposes the HTTP API. Handlers are thin glue: they
// parse and validate requests, call the generator/streak/advisor
// components, and shape responses.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/habitgenius/habitgenius/internal/advisor"
	"github.com/habitgenius/habitgenius/internal/logger"
	"github.com/habitgenius/habitgenius/internal/storage"
)

type Server struct {
	store   storage.Provider
	advisor *advisor.Advisor
	engine  *gin.Engine
}

// New wires the routes onto a gin engine. The store's lifecycle is
// owned by the caller; the server only borrows it.
func New(store storage.Provider) *Server {
	s := &Server{
		store:   store,
		advisor: advisor.New(store),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	engine.GET("/", s.root)
	engine.GET("/test", s.testStore)

	api := engine.Group("/api")
	api.POST("/habits", s.createHabit)
	api.GET("/habits", s.listHabits)
	api.GET("/habits/:id/roadmap", s.getRoadmap)
	api.GET("/habits/:id/resources", s.getResources)
	api.POST("/progress", s.addProgress)
	api.GET("/progress/:habit_id", s.listProgress)
	api.GET("/messages", s.listMessages)
	api.POST("/ask", s.ask)

	s.engine = engine
	return s
}

// Handler returns the underlying HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving HTTP on the given address.
func (s *Server) Run(addr string) error {
	logger.Info("HTTP server listening", "addr", addr)
	return s.engine.Run(addr)
}

// storeError logs a failed store call and answers 500.
func storeError(c *gin.Context, err error) {
	logger.Error("Store operation failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
