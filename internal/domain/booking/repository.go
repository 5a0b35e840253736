package booking

import (
	"context"

	"github.com/barbeariabiu/agenda/internal/models"
)

type Repository interface {
	// Insert grava um novo agendamento.
	Insert(ctx context.Context, b *models.Booking) error

	// ListOrdered devolve todos os agendamentos em ordem
	// cronológica ascendente (por data_completa).
	ListOrdered(ctx context.Context) ([]models.Booking, error)
}
