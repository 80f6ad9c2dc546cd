package generate_shortlist

import "github.com/m04kA/SMC-InterviewService/internal/domain"

// Request модель запроса на генерацию шорт-листа вакансии
type Request struct {
	VacancyID int64

	// Size размер шорт-листа; по умолчанию 5
	Size int
}

// Response сгенерированный шорт-лист в порядке рангов
type Response struct {
	VacancyID int64
	Entries   []*domain.ShortlistEntry
}
