package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VacancyID <= 0 {
		return fmt.Errorf("%w: vacancyID must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}

	if req.RangeStart != nil && req.RangeEnd != nil && !req.RangeEnd.After(*req.RangeStart) {
		return fmt.Errorf("%w: rangeEnd must be after rangeStart", ErrInvalidInput)
	}

	return nil
}
