package http

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/computaria/cachorro-sumido/internal/posts"
	"github.com/computaria/cachorro-sumido/internal/ws"
)

// SetupRoutes configures all application routes and middleware.
func SetupRoutes(router *gin.Engine, db *gorm.DB, hub *ws.Hub) {

	// --- Dependencies ---
	env := &Env{
		Repo:      posts.NewRepository(db),
		Hub:       hub,
		UploadDir: os.Getenv("UPLOAD_DIR"),
	}

	// --- Middleware ---

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	// CORS Middleware
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "*" // Default to allow all for local dev
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// --- API Routes ---

	router.GET("/", env.Health)
	router.GET("/lost_dog_posts", env.ListPosts)
	router.GET("/lost_dog_posts/:id", env.GetPost)
	router.POST("/lost_dog_posts", env.CreatePost)
	router.PUT("/lost_dog_posts/:id", env.UpdatePost)
	router.DELETE("/lost_dog_posts/:id", env.DeletePost)

	// --- WebSocket Route ---

	router.GET("/ws", func(c *gin.Context) {
		ws.ServeWs(hub, c.Writer, c.Request)
	})

	// --- Locally stored uploads (one deployment variant keeps image
	// files on disk instead of a hosting service) ---
	if env.UploadDir != "" {
		router.Static("/uploads", env.UploadDir)
	}
}
