package booking

import (
	"context"
	"fmt"

	domain "github.com/barbeariabiu/agenda/internal/domain/booking"
	"github.com/barbeariabiu/agenda/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute devolve todos os agendamentos em ordem cronológica.
func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	bookings, err := uc.repo.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("buscar agendamentos: %w", err)
	}
	return bookings, nil
}
