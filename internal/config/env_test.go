package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "OWNER_WHATSAPP", "ADMIN_USER", "ADMIN_PASS", "SESSION_SECRET"} {
		t.Setenv(key, "")
	}
	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("default addr wrong: %s", env.AppAddr)
	}
	if env.OwnerWhatsApp != "918290105891" {
		t.Fatalf("default owner phone wrong: %s", env.OwnerWhatsApp)
	}
	if env.AdminUser != "admin" || env.AdminPass != "adminpass" {
		t.Fatalf("default admin credentials wrong: %s/%s", env.AdminUser, env.AdminPass)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("OWNER_WHATSAPP", "911234567890")
	t.Setenv("ADMIN_USER", "root")
	env := LoadEnv()
	if env.AppAddr != ":9999" || env.OwnerWhatsApp != "911234567890" || env.AdminUser != "root" {
		t.Fatalf("overrides not applied: %+v", env)
	}
}
