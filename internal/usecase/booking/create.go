package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/barbeariabiu/agenda/internal/domain/booking"
	"github.com/barbeariabiu/agenda/internal/models"
	"github.com/barbeariabiu/agenda/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Nome     string
	Telefone string
	Data     string // YYYY-MM-DD
	Hora     string // HH:mm
}

type CreateResult struct {
	Booking *models.Booking

	// Os dois links são devolvidos; quem chama decide qual usar
	// (o fluxo web redireciona para a notificação do dono).
	LinkNotificacao string
	LinkCliente     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo       domain.Repository
	hours      domain.Hours
	links      *notify.Builder
	dispatcher *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	hours domain.Hours,
	links *notify.Builder,
	dispatcher *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		hours:      hours,
		links:      links,
		dispatcher: dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(ctx context.Context, in CreateInput) (*CreateResult, error) {

	nome := strings.TrimSpace(in.Nome)
	telefone := strings.TrimSpace(in.Telefone)
	data := strings.TrimSpace(in.Data)
	hora := strings.TrimSpace(in.Hora)

	if nome == "" || telefone == "" || data == "" || hora == "" {
		return nil, domain.ErrMissingFields
	}

	if err := uc.hours.Validate(data, hora); err != nil {
		return nil, err
	}

	display, err := domain.DisplayDate(data)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		PublicID:     uuid.NewString(),
		Nome:         nome,
		Telefone:     telefone,
		Data:         display,
		Hora:         hora,
		DataCompleta: data + " " + hora,
		CreatedAt:    time.Now(),
	}

	if err := uc.repo.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("salvar agendamento: %w", err)
	}

	links := uc.links.Build(nome, telefone, display, hora)

	uc.dispatcher.Dispatch(notify.LinkEvent{
		Nome:  nome,
		Links: links,
	})

	return &CreateResult{
		Booking:         b,
		LinkNotificacao: links.Owner,
		LinkCliente:     links.Customer,
	}, nil
}
