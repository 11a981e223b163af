package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psicocitas/config"
	"psicocitas/middleware"
	"psicocitas/services/booking"
	"psicocitas/utils"
)

// Forms with attachments are rejected anyway; 1 MiB is plenty for text fields.
const maxFormMemory = 1 << 20

// BookingHandler exposes the booking intake pipeline over HTTP.
type BookingHandler struct {
	Service booking.Service
	Cfg     *config.Config
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, cfg *config.Config, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Cfg: cfg, Logger: logger}
}

// Submit accepts the booking form (multipart or url-encoded), runs the
// pipeline and maps its outcome to an HTTP response.
func (h *BookingHandler) Submit(c *gin.Context) {
	form, err := parseForm(c)
	if err != nil {
		utils.TextError(c, http.StatusBadRequest, "Invalid form data", err.Error())
		return
	}

	outcome := h.Service.Submit(c.Request.Context(), form)
	middleware.ContextLogger(c).Info("Booking submission processed",
		zap.Stringer("outcome", outcome.Kind))

	switch outcome.Kind {
	case booking.OutcomeSpamSuppressed:
		c.Status(http.StatusNoContent)
	case booking.OutcomeRejected:
		c.String(http.StatusBadRequest, outcome.Reason)
	case booking.OutcomeConfigError, booking.OutcomeRecordFailed:
		c.String(http.StatusInternalServerError, outcome.Reason)
	case booking.OutcomeNotifyFailed:
		c.String(http.StatusBadGateway, outcome.Reason)
	case booking.OutcomeDelivered:
		h.respondSuccess(c)
	default:
		h.Logger.Error("Unknown submission outcome", zap.Int("kind", int(outcome.Kind)))
		c.String(http.StatusInternalServerError, "Server error")
	}
}

// respondSuccess content-negotiates: JSON body for API callers, a redirect
// to the thank-you page for plain browser form posts.
func (h *BookingHandler) respondSuccess(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.Redirect(http.StatusSeeOther, h.Cfg.ThankYouPath)
}

// parseForm reads both multipart/form-data and url-encoded bodies into one
// value set.
func parseForm(c *gin.Context) (url.Values, error) {
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return c.Request.PostForm, nil
}
