package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbeariabiu/agenda/internal/config"
	"github.com/barbeariabiu/agenda/internal/httperr"
	"github.com/barbeariabiu/agenda/internal/httpresp"
	ucBooking "github.com/barbeariabiu/agenda/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	cfg      *config.Config
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
}

func NewBookingHandler(
	cfg *config.Config,
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		cfg:      cfg,
		createUC: createUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Data     string `json:"data"` // YYYY-MM-DD
	Hora     string `json:"hora"` // HH:mm
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateInput{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Data:     req.Data,
		Hora:     req.Hora,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, businessMessage(h.cfg, code))
			return
		}
		httperr.Internal(c, "booking_write_failed", msgSaveFailed)
		return
	}

	httpresp.Created(c, gin.H{
		"agendamento":      res.Booking,
		"link_notificacao": res.LinkNotificacao,
		"link_cliente":     res.LinkCliente,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "booking_read_failed", msgListFailed)
		return
	}

	httpresp.List(c, bookings)
}
