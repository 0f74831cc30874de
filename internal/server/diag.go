package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Habit Genius API running"})
}

// testStore reports whether the backing store is reachable and which
// collections it holds.
func (s *Server) testStore(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "unavailable",
		"connection_status": "not connected",
		"config_path":       s.store.GetConfigPath(),
		"collections":       []string{},
	}

	if err := s.store.Ping(); err != nil {
		response["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"

	if collections, err := s.store.Collections(); err == nil {
		response["collections"] = collections
	} else {
		response["database"] = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, response)
}
