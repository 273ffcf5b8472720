package api

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ckjeong/blogforge/app/cfg"
)

// NewServer creates a preview HTTP server over the generated site
func NewServer(outDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	setupRoutes(r, outDir)

	return r
}

// setupRoutes configures the static site routes
func setupRoutes(r *gin.Engine, outDir string) {
	dirName := filepath.Base(outDir)
	indexPath := filepath.Join(filepath.Dir(outDir), dirName+".html")

	// Generated pages
	r.Static("/"+dirName, outDir)
	r.StaticFile("/"+dirName+".html", indexPath)
	r.GET("/", func(c *gin.Context) {
		c.File(indexPath)
	})

	// Stylesheet directory, when the site ships one
	if info, err := os.Stat(filepath.Join(filepath.Dir(outDir), "css")); err == nil && info.IsDir() {
		r.Static("/css", filepath.Join(filepath.Dir(outDir), "css"))
	}

	// Health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": cfg.Get().Version,
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
