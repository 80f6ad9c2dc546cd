package score_applications

// Request модель запроса на скоринг откликов вакансии
type Request struct {
	VacancyID int64
}

// Response сводка скоринга по вакансии
type Response struct {
	VacancyID int64

	Total   int // Всего неоцененных откликов
	Scored  int // Успешно оценено
	Skipped int // Пропущено из-за ошибок скоринга
}
