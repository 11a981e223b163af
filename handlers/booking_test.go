package handlers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"psicocitas/config"
	"psicocitas/middleware"
	"psicocitas/models"
	"psicocitas/services/booking"
	"psicocitas/services/notify"
	"psicocitas/utils"
)

type stubRecorder struct {
	err   error
	calls int
}

func (s *stubRecorder) Record(ctx context.Context, sub models.BookingSubmission) error {
	s.calls++
	return s.err
}

type stubNotifier struct {
	err   error
	calls int
}

func (s *stubNotifier) SendAll(ctx context.Context, sub models.BookingSubmission) error {
	s.calls++
	return s.err
}

func newTestRouter(rec *stubRecorder, not *stubNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{ThankYouPath: "/gracias"}
	svc := &booking.DefaultBookingService{Recorder: rec, Notifier: not}
	h := NewBookingHandler(svc, cfg, utils.GetLogger())

	r := gin.New()
	r.POST("/api/booking", h.Submit)
	return r
}

func postForm(t *testing.T, r *gin.Engine, form url.Values, accept string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingForm() url.Values {
	form := url.Values{}
	form.Set("guardian_name", "Maria Lopez")
	form.Set("patient_name", "Juan Lopez")
	form.Set("patient_age", "9")
	form.Set("email", "maria@example.com")
	form.Set("phone", "3001234567")
	form.Set("session_type", "Presencial")
	return form
}

func TestSubmit_Honeypot204(t *testing.T) {
	rec := &stubRecorder{}
	not := &stubNotifier{}
	r := newTestRouter(rec, not)

	form := bookingForm()
	form.Set("company", "Acme Inc")

	w := postForm(t, r, form, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Zero(t, rec.calls)
	assert.Zero(t, not.calls)
}

func TestSubmit_MissingField400(t *testing.T) {
	rec := &stubRecorder{}
	r := newTestRouter(rec, &stubNotifier{})

	form := bookingForm()
	form.Del("phone")

	w := postForm(t, r, form, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", w.Body.String())
	assert.Zero(t, rec.calls)
}

func TestSubmit_InvalidEmail400(t *testing.T) {
	r := newTestRouter(&stubRecorder{}, &stubNotifier{})

	form := bookingForm()
	form.Set("email", "a@b")

	w := postForm(t, r, form, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email", w.Body.String())
}

func TestSubmit_RecorderErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"config missing", booking.ErrSheetConfigMissing, http.StatusInternalServerError, "Missing Google Sheets configuration"},
		{"tab not found", booking.ErrTabNotFound, http.StatusInternalServerError, "Sheet tab not found"},
		{"record failed", booking.ErrRecordFailed, http.StatusInternalServerError, "Failed to record booking"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			not := &stubNotifier{}
			r := newTestRouter(&stubRecorder{err: tc.err}, not)

			w := postForm(t, r, bookingForm(), "")
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
			assert.Zero(t, not.calls)
		})
	}
}

func TestSubmit_NotifyFailure502(t *testing.T) {
	rec := &stubRecorder{}
	not := &stubNotifier{err: &notify.DeliveryError{Channel: "whatsapp", Err: notify.ErrMessageDelivery}}
	r := newTestRouter(rec, not)

	w := postForm(t, r, bookingForm(), "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "WhatsApp delivery failed", w.Body.String())
	assert.Equal(t, 1, rec.calls, "record is kept even when notification fails")
}

func TestSubmit_SuccessJSON(t *testing.T) {
	r := newTestRouter(&stubRecorder{}, &stubNotifier{})

	w := postForm(t, r, bookingForm(), "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["ok"])
}

func TestSubmit_SuccessRedirect(t *testing.T) {
	r := newTestRouter(&stubRecorder{}, &stubNotifier{})

	w := postForm(t, r, bookingForm(), "text/html")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/gracias", w.Header().Get("Location"))
}

func TestSubmit_MultipartForm(t *testing.T) {
	r := newTestRouter(&stubRecorder{}, &stubNotifier{})

	var b strings.Builder
	mw := newMultipartBody(&b, bookingForm())

	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(b.String()))
	req.Header.Set("Content-Type", mw)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmit_OutcomeLoggedWithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	prev := utils.Logger
	utils.Logger = zap.New(core)
	t.Cleanup(func() { utils.Logger = prev })

	cfg := &config.Config{ThankYouPath: "/gracias"}
	svc := &booking.DefaultBookingService{Recorder: &stubRecorder{}, Notifier: &stubNotifier{}}
	h := NewBookingHandler(svc, cfg, utils.GetLogger())

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.POST("/api/booking", h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(bookingForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-ID", "sub-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)

	entries := logs.FilterMessage("Booking submission processed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "sub-42", fields["requestID"])
	assert.Equal(t, "delivered", fields["outcome"])
}

func newMultipartBody(b *strings.Builder, form url.Values) string {
	mw := multipart.NewWriter(b)
	for key, vals := range form {
		for _, v := range vals {
			_ = mw.WriteField(key, v)
		}
	}
	_ = mw.Close()
	return mw.FormDataContentType()
}
