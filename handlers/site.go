package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"psicocitas/config"
	"psicocitas/services/site"
)

const seoCacheControl = "public, max-age=3600"

// SiteHandler serves the static SEO texts and the public WhatsApp link.
type SiteHandler struct {
	Cfg *config.Config
}

func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{Cfg: cfg}
}

func (h *SiteHandler) Robots(c *gin.Context) {
	c.Header("Cache-Control", seoCacheControl)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(site.Robots(h.Cfg)))
}

func (h *SiteHandler) Sitemap(c *gin.Context) {
	c.Header("Cache-Control", seoCacheControl)
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(site.Sitemap(h.Cfg, time.Now())))
}

func (h *SiteHandler) WhatsAppLink(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"link": site.WhatsAppLink(h.Cfg)})
}
