package booking

import (
	"errors"
	"testing"
	"time"
)

func defaultHours() Hours {
	return Hours{
		OpenHour:      9,
		CloseHour:     19,
		ClosedWeekday: time.Monday,
	}
}

func TestValidate_AcceptsOpenDayWithinHours(t *testing.T) {
	h := defaultHours()

	// 2024-03-16 é sábado
	valid := []string{"09:00", "09:30", "10:00", "12:45", "18:59", "19:00"}
	for _, hora := range valid {
		if err := h.Validate("2024-03-16", hora); err != nil {
			t.Fatalf("expected %s to be valid, got %v", hora, err)
		}
	}
}

func TestValidate_RejectsClosedDay(t *testing.T) {
	h := defaultHours()

	// 2024-03-18 é segunda-feira; qualquer horário é recusado
	for _, hora := range []string{"09:00", "12:00", "19:00"} {
		err := h.Validate("2024-03-18", hora)
		if !errors.Is(err, ErrClosedDay) {
			t.Fatalf("expected ErrClosedDay for %s, got %v", hora, err)
		}
	}
}

func TestValidate_RejectsOutsideHours(t *testing.T) {
	h := defaultHours()

	outside := []string{"00:00", "08:59", "19:01", "19:30", "20:00", "23:59"}
	for _, hora := range outside {
		err := h.Validate("2024-03-16", hora)
		if !errors.Is(err, ErrOutsideHours) {
			t.Fatalf("expected ErrOutsideHours for %s, got %v", hora, err)
		}
	}
}

func TestValidate_RejectsMalformedInput(t *testing.T) {
	h := defaultHours()

	cases := []struct {
		data string
		hora string
	}{
		{"2024-13-01", "10:00"},
		{"16/03/2024", "10:00"},
		{"", "10:00"},
		{"2024-03-16", "25:00"},
		{"2024-03-16", "10h30"},
		{"2024-03-16", ""},
	}

	for _, tc := range cases {
		err := h.Validate(tc.data, tc.hora)
		if !errors.Is(err, ErrInvalidDateOrTime) {
			t.Fatalf("expected ErrInvalidDateOrTime for %q %q, got %v", tc.data, tc.hora, err)
		}
	}
}

func TestValidate_ConfigurableClosedDay(t *testing.T) {
	h := defaultHours()
	h.ClosedWeekday = time.Sunday

	// segunda passa a valer, domingo é recusado
	if err := h.Validate("2024-03-18", "10:00"); err != nil {
		t.Fatalf("expected monday to be valid, got %v", err)
	}
	if err := h.Validate("2024-03-17", "10:00"); !errors.Is(err, ErrClosedDay) {
		t.Fatalf("expected ErrClosedDay on sunday, got %v", err)
	}
}
