package booking

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Hours guarda as regras de funcionamento da barbearia.
// OpenHour/CloseHour são horas cheias; o fechamento aceita minuto
// zero em ponto (19:00 vale, 19:01 não).
type Hours struct {
	OpenHour      int
	CloseHour     int
	ClosedWeekday time.Weekday
}

// Validate verifica se a data/hora pedida cai dentro do expediente.
// Não consulta agendamentos existentes: conflito de horário não é
// tratado aqui.
func (h Hours) Validate(data, hora string) error {
	day, err := time.Parse(dateLayout, data)
	if err != nil {
		return ErrInvalidDateOrTime
	}

	t, err := time.Parse(timeLayout, hora)
	if err != nil {
		return ErrInvalidDateOrTime
	}

	if day.Weekday() == h.ClosedWeekday {
		return ErrClosedDay
	}

	hour, minute := t.Hour(), t.Minute()
	if hour < h.OpenHour || hour > h.CloseHour || (hour == h.CloseHour && minute > 0) {
		return ErrOutsideHours
	}

	return nil
}
