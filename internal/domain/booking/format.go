package booking

import "time"

// DisplayDate converte uma data ISO (YYYY-MM-DD) para o formato
// curto de exibição DD/MM.
func DisplayDate(data string) (string, error) {
	day, err := time.Parse(dateLayout, data)
	if err != nil {
		return "", ErrInvalidDateOrTime
	}
	return day.Format("02/01"), nil
}
