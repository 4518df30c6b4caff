package transizione_stato

// Request модель запроса на смену статуса бронирования
type Request struct {
	PrenotazioneID int64
	NuovoStato     string  // Целевой статус
	Note           *string // Комментарий к переходу (обязателен для annullato)
	UtenteID       *int64  // Кто выполняет переход
}
