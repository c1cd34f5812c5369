package config

import (
	"os"
	"strings"
)

// Env holds process-level configuration loaded once at startup.
type Env struct {
	AppAddr       string
	GinMode       string
	OwnerWhatsApp string // digits only, no plus
	AdminUser     string
	AdminPass     string
	SessionSecret string
	APISecret     string
	TemplateGlob  string
}

func LoadEnv() Env {
	return Env{
		AppAddr:       envOr("APP_ADDR", ":8080"),
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		OwnerWhatsApp: envOr("OWNER_WHATSAPP", "918290105891"),
		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPass:     envOr("ADMIN_PASS", "adminpass"),
		SessionSecret: envOr("SESSION_SECRET", "please_change_this_secret"),
		APISecret:     envOr("API_SECRET", "please_change_this_secret"),
		TemplateGlob:  envOr("TEMPLATE_GLOB", "web/templates/*.html"),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
