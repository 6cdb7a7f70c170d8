package server

import (
	"log"
	"net/http"

	"github.com/agenthands/classmem/internal/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	Store *core.Store
}

func NewServer(store *core.Store) *Server {
	return &Server{Store: store}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	r.GET("/healthz", s.Health)

	api := r.Group("/api")
	api.GET("/students", s.ListStudents)
	api.GET("/students/:id", s.GetStudent)
	api.GET("/events", s.ListEvents)
	api.GET("/events/:id", s.GetEvent)
	api.GET("/gallery", s.GetGallery)
	api.GET("/memories/recent", s.RecentMemories)
	api.GET("/search", s.Search)
	api.GET("/timeline", s.Timeline)

	return r
}

// RequestID tags every request with an id, reusing the caller's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) Health(c *gin.Context) {
	s.Store.Load(c.Request.Context())
	if err := s.Store.LoadErr(); err != nil {
		log.Printf("[%s] serving fallback dataset: %v", c.GetString("request_id"), err)
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"students": s.Store.Students(c.Request.Context())})
}

func (s *Server) GetStudent(c *gin.Context) {
	student, ok := s.Store.StudentRef(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	c.JSON(http.StatusOK, student)
}

func (s *Server) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": s.Store.Events(c.Request.Context())})
}

func (s *Server) GetEvent(c *gin.Context) {
	event, ok := s.Store.EventRef(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Gallery(c.Request.Context()))
}

func (s *Server) RecentMemories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"memories": s.Store.RecentMemories(c.Request.Context())})
}

// Search treats a missing q as the empty query, which matches everything.
func (s *Server) Search(c *gin.Context) {
	query := c.Query("q")
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": s.Store.Search(c.Request.Context(), query),
	})
}

func (s *Server) Timeline(c *gin.Context) {
	timeline := s.Store.Timeline(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"years":    timeline.Years(),
		"timeline": timeline,
	})
}
