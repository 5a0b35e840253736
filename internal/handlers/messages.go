package handlers

import (
	"fmt"
	"time"

	"github.com/barbeariabiu/agenda/internal/config"
	domain "github.com/barbeariabiu/agenda/internal/domain/booking"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingos",
	time.Monday:    "segundas-feiras",
	time.Tuesday:   "terças-feiras",
	time.Wednesday: "quartas-feiras",
	time.Thursday:  "quintas-feiras",
	time.Friday:    "sextas-feiras",
	time.Saturday:  "sábados",
}

const (
	msgSaveFailed = "Erro ao salvar agendamento. Por favor, tente novamente."
	msgListFailed = "Erro ao buscar agendamentos. Por favor, tente novamente."
)

// businessMessage traduz um código de erro de negócio para a razão
// mostrada ao cliente, usando as regras configuradas.
func businessMessage(cfg *config.Config, code string) string {
	switch code {
	case domain.CodeMissingFields:
		return "Por favor, preencha todos os campos."
	case domain.CodeInvalidDateOrTime:
		return "Data ou hora inválida."
	case domain.CodeClosedDay:
		return fmt.Sprintf("Não atendemos às %s", weekdayNames[cfg.ClosedWeekday])
	case domain.CodeOutsideHours:
		return fmt.Sprintf("Horário de atendimento: %02d:00 às %02d:00", cfg.OpenHour, cfg.CloseHour)
	}
	return "Requisição inválida."
}
