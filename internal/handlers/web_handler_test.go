package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/barbeariabiu/agenda/internal/config"
	domain "github.com/barbeariabiu/agenda/internal/domain/booking"
	"github.com/barbeariabiu/agenda/internal/models"
	"github.com/barbeariabiu/agenda/internal/notify"
	ucBooking "github.com/barbeariabiu/agenda/internal/usecase/booking"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	bookings  []models.Booking
	insertErr error
	listErr   error
}

func (f *fakeRepo) Insert(_ context.Context, b *models.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) ListOrdered(_ context.Context) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Booking, len(f.bookings))
	copy(out, f.bookings)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DataCompleta < out[j].DataCompleta
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// SETUP
// ======================================================

func newTestRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		OpenHour:      9,
		CloseHour:     19,
		ClosedWeekday: time.Monday,
		OwnerPhone:    "82988123197",
		CountryCode:   "55",
		ShopName:      "Barbearia Biu 1",
	}

	createUC := ucBooking.NewCreateBooking(
		repo,
		domain.Hours{
			OpenHour:      cfg.OpenHour,
			CloseHour:     cfg.CloseHour,
			ClosedWeekday: cfg.ClosedWeekday,
		},
		notify.NewBuilder(cfg),
		notify.NewDispatcher(zap.NewNop()),
	)
	listUC := ucBooking.NewListBookings(repo)

	webHandler := NewWebHandler(cfg, createUC, listUC)
	bookingHandler := NewBookingHandler(cfg, createUC, listUC)

	r := gin.New()
	r.POST("/agendar", webHandler.Agendar)
	r.POST("/api/agendamentos", bookingHandler.Create)
	r.GET("/api/agendamentos", bookingHandler.List)
	return r
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/agendar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingForm() url.Values {
	return url.Values{
		"nome":     {"Carlos"},
		"telefone": {"82999998888"},
		"data":     {"2024-03-16"}, // sábado
		"hora":     {"19:00"},
	}
}

// ======================================================
// FORM FLOW
// ======================================================

func TestAgendar_RedirectsToOwnerLink(t *testing.T) {
	repo := &fakeRepo{}
	w := postForm(newTestRouter(repo), bookingForm())

	require.Equal(t, http.StatusFound, w.Code)

	loc := w.Header().Get("Location")
	assert.Contains(t, loc, "wa.me/5582988123197")
	assert.Contains(t, loc, "text=")

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, "16/03", repo.bookings[0].Data)
	assert.Equal(t, "2024-03-16 19:00", repo.bookings[0].DataCompleta)
}

func TestAgendar_MissingField(t *testing.T) {
	repo := &fakeRepo{}
	form := bookingForm()
	form.Set("nome", "   ")

	w := postForm(newTestRouter(repo), form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Por favor, preencha todos os campos.", w.Body.String())
	assert.Empty(t, repo.bookings)
}

func TestAgendar_OutsideHours(t *testing.T) {
	repo := &fakeRepo{}
	form := bookingForm()
	form.Set("hora", "19:30")

	w := postForm(newTestRouter(repo), form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Horário de atendimento: 09:00 às 19:00", w.Body.String())
	assert.Empty(t, repo.bookings)
}

func TestAgendar_ClosedDay(t *testing.T) {
	repo := &fakeRepo{}
	form := bookingForm()
	form.Set("data", "2024-03-18") // segunda-feira

	w := postForm(newTestRouter(repo), form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Não atendemos às segundas-feiras", w.Body.String())
}

func TestAgendar_StoreFailure(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("boom")}
	w := postForm(newTestRouter(repo), bookingForm())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Erro ao salvar agendamento. Por favor, tente novamente.", w.Body.String())
}

// ======================================================
// JSON API
// ======================================================

func TestAPICreate_ReturnsBothLinks(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	body, _ := json.Marshal(map[string]string{
		"nome":     "Ana",
		"telefone": "(82) 9 9999-8888",
		"data":     "2024-03-16",
		"hora":     "10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/agendamentos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Agendamento     models.Booking `json:"agendamento"`
		LinkNotificacao string         `json:"link_notificacao"`
		LinkCliente     string         `json:"link_cliente"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Ana", resp.Agendamento.Nome)
	assert.Equal(t, "16/03", resp.Agendamento.Data)
	assert.Contains(t, resp.LinkNotificacao, "wa.me/5582988123197")
	assert.Contains(t, resp.LinkCliente, "wa.me/5582999998888")
}

func TestAPICreate_BusinessErrorEnvelope(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	body, _ := json.Marshal(map[string]string{
		"nome":     "Ana",
		"telefone": "82999998888",
		"data":     "2024-03-18", // segunda-feira
		"hora":     "10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/agendamentos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code    string `json:"error_code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "closed_day", resp.Code)
	assert.NotEmpty(t, resp.Message)
}

func TestAPIList_Envelope(t *testing.T) {
	repo := &fakeRepo{bookings: []models.Booking{
		{Nome: "Bruno", Data: "20/03", Hora: "15:00", DataCompleta: "2024-03-20 15:00"},
		{Nome: "Ana", Data: "16/03", Hora: "10:00", DataCompleta: "2024-03-16 10:00"},
	}}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/agendamentos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.Booking `json:"data"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Ana", resp.Data[0].Nome)
	assert.Equal(t, "Bruno", resp.Data[1].Nome)
}

func TestAPIList_StoreFailure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("boom")}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/agendamentos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "booking_read_failed")
}
