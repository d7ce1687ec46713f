package devbackend

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"go-xscraper/internal/models"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the store into a gin engine:
//
//	GET  /          health check
//	GET  /people    identity list
//	POST /people    register a profile
//	GET  /posts     stored posts, optional ?personId=
//	POST /posts     append a batch
func NewRouter(store *Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "xscraper dev backend is running!",
			"status":  "healthy",
		})
	})

	r.GET("/people", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.People())
	})

	r.POST("/people", func(c *gin.Context) {
		var p models.Profile
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := p.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if existing, ok := store.FindPerson(p.Username); ok {
			c.JSON(http.StatusConflict, gin.H{"error": "username already registered", "id": existing.ID})
			return
		}

		saved := store.AddPerson(p)
		log.Printf("👤 Registered '%s' as person %d", saved.Username, *saved.ID)
		c.JSON(http.StatusCreated, saved)
	})

	r.GET("/posts", func(c *gin.Context) {
		personID := 0
		if raw := c.Query("personId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "personId must be a positive integer"})
				return
			}
			personID = id
		}
		c.JSON(http.StatusOK, store.Posts(personID))
	})

	r.POST("/posts", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		posts, err := models.ParsePosts(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store.AddPosts(posts)
		log.Printf("💾 Stored %d posts", len(posts))
		c.JSON(http.StatusCreated, gin.H{"inserted": len(posts)})
	})

	return r
}
