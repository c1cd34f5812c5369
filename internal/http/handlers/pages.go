package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// flash categories shared by the form flow and the index page
const (
	flashDanger = "danger"
	flashInfo   = "info"
)

// GET /
func (h *Handler) Index(c *gin.Context) {
	s := sessions.Default(c)
	errs := flashStrings(s.Flashes(flashDanger))
	infos := flashStrings(s.Flashes(flashInfo))
	_ = s.Save()

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Errors": errs,
		"Infos":  infos,
		"Year":   time.Now().UTC().Year(),
	})
}

func addFlashes(c *gin.Context, category string, msgs ...string) {
	s := sessions.Default(c)
	for _, m := range msgs {
		s.AddFlash(m, category)
	}
	_ = s.Save()
}

func flashStrings(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
