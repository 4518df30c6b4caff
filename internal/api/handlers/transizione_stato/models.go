package transizione_stato

// TransizioneStatoRequest HTTP request model
type TransizioneStatoRequest struct {
	NuovoStato string  `json:"nuovo_stato"`
	Note       *string `json:"note,omitempty"`
}

// TransizioneNonValidaResponse тело ответа при недопустимом переходе:
// вместе с сообщением возвращается множество допустимых переходов
type TransizioneNonValidaResponse struct {
	Error                string   `json:"error"`
	StatoAttuale         string   `json:"stato_attuale"`
	StatoRichiesto       string   `json:"stato_richiesto"`
	TransizioniPossibili []string `json:"transizioni_possibili"`
}
