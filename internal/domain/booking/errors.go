package booking

import "github.com/barbeariabiu/agenda/internal/httperr"

// Códigos de erro de negócio do fluxo de agendamento.
const (
	CodeMissingFields     = "missing_fields"
	CodeInvalidDateOrTime = "invalid_date_or_time"
	CodeClosedDay         = "closed_day"
	CodeOutsideHours      = "outside_hours"
)

var (
	ErrMissingFields     = httperr.ErrBusiness(CodeMissingFields)
	ErrInvalidDateOrTime = httperr.ErrBusiness(CodeInvalidDateOrTime)
	ErrClosedDay         = httperr.ErrBusiness(CodeClosedDay)
	ErrOutsideHours      = httperr.ErrBusiness(CodeOutsideHours)
)
