package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func siteRoot(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// GET /sitemap.xml
func (h *Handler) Sitemap(c *gin.Context) {
	root := siteRoot(c)
	lines := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		fmt.Sprintf("<url><loc>%s/</loc></url>", root),
		`</urlset>`,
	}
	c.Data(http.StatusOK, "application/xml", []byte(strings.Join(lines, "\n")))
}

// GET /robots.txt
func (h *Handler) Robots(c *gin.Context) {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin\nSitemap: %s/sitemap.xml", siteRoot(c))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
