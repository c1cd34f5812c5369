package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"couriersathi/internal/auth"
	h "couriersathi/internal/http/handlers"
	"couriersathi/internal/http/middleware"
)

// NewRouter wires the middleware chain and the route table around the
// handler's dependencies.
func NewRouter(handler *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	store := cookie.NewStore([]byte(handler.Env.SessionSecret))
	r.Use(sessions.Sessions("couriersathi_session", store))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	if handler.Env.TemplateGlob != "" {
		r.LoadHTMLGlob(handler.Env.TemplateGlob)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", handler.Index)
	r.POST("/submit", handler.SubmitForm)
	r.GET("/sitemap.xml", handler.Sitemap)
	r.GET("/robots.txt", handler.Robots)

	admin := r.Group("/admin", auth.Basic(handler.Creds))
	{
		admin.GET("", handler.AdminList)
		admin.GET("/export.pdf", handler.AdminExportPDF)
	}

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/db-check", handler.DBCheck)
		api.POST("/submit-json", handler.SubmitJSON)

		api.POST("/admin/login", handler.AdminLogin)
		api.GET("/admin/bookings", auth.RequireToken(handler.Tokens), handler.AdminBookingsJSON)
	}

	return r
}
