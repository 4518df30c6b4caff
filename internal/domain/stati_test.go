package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransizioniPossibili_Produzione(t *testing.T) {
	tests := []struct {
		stato Stato
		want  []Stato
	}{
		{StatoPianificato, []Stato{StatoPresoInCarico, StatoAnnullato}},
		{StatoPresoInCarico, []Stato{StatoInProduzione, StatoAnnullato}},
		{StatoInProduzione, []Stato{StatoCompletato}},
		{StatoCompletato, []Stato{}},
		{StatoAnnullato, []Stato{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.stato), func(t *testing.T) {
			got := TransizioniPossibili(TipologiaProduzione, tt.stato)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestTransizioniPossibili_Consegna(t *testing.T) {
	tests := []struct {
		stato Stato
		want  []Stato
	}{
		{StatoPianificato, []Stato{StatoPresoInCarico, StatoAnnullato}},
		{StatoPresoInCarico, []Stato{StatoInPreparazione, StatoAnnullato}},
		{StatoInPreparazione, []Stato{StatoProntoCarico, StatoAnnullato}},
		{StatoProntoCarico, []Stato{StatoInCarico, StatoAnnullato}},
		{StatoInCarico, []Stato{StatoCaricato}},
		{StatoCaricato, []Stato{StatoPartito}},
		{StatoPartito, []Stato{}},
		{StatoAnnullato, []Stato{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.stato), func(t *testing.T) {
			got := TransizioniPossibili(TipologiaConsegna, tt.stato)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestTransizioniPossibili_StatoSconosciuto(t *testing.T) {
	assert.Empty(t, TransizioniPossibili(TipologiaProduzione, "inesistente"))
	assert.Empty(t, TransizioniPossibili(TipologiaConsegna, ""))

	// Delivery-only states are unknown to the production graph and vice versa
	assert.Empty(t, TransizioniPossibili(TipologiaProduzione, StatoInCarico))
	assert.Empty(t, TransizioniPossibili(TipologiaConsegna, StatoInProduzione))
}

// IsTransizioneValida must agree with set membership in TransizioniPossibili
// for every (stato, nuovo) pair, including unreachable and garbage states.
func TestIsTransizioneValida_CoerenteConTransizioniPossibili(t *testing.T) {
	tuttiGliStati := []Stato{
		StatoPianificato, StatoPresoInCarico, StatoInProduzione, StatoCompletato,
		StatoInPreparazione, StatoProntoCarico, StatoInCarico, StatoCaricato,
		StatoPartito, StatoAnnullato, "inesistente", "",
	}

	for _, tipologia := range []Tipologia{TipologiaProduzione, TipologiaConsegna} {
		for _, da := range tuttiGliStati {
			possibili := TransizioniPossibili(tipologia, da)

			for _, a := range tuttiGliStati {
				contenuto := false
				for _, s := range possibili {
					if s == a {
						contenuto = true
						break
					}
				}

				assert.Equal(t, contenuto, IsTransizioneValida(tipologia, da, a),
					"tipologia=%s da=%s a=%s", tipologia, da, a)
			}
		}
	}
}

func TestIsTransizioneValida_SaltoDiStato(t *testing.T) {
	// Jumping straight from pianificato to caricato is never allowed
	assert.False(t, IsTransizioneValida(TipologiaConsegna, StatoPianificato, StatoCaricato))
	// Completed production cannot move anywhere
	assert.False(t, IsTransizioneValida(TipologiaProduzione, StatoCompletato, StatoPianificato))
}

func TestIsStatoFinale(t *testing.T) {
	assert.True(t, IsStatoFinale(TipologiaProduzione, StatoCompletato))
	assert.True(t, IsStatoFinale(TipologiaProduzione, StatoAnnullato))
	assert.True(t, IsStatoFinale(TipologiaConsegna, StatoPartito))
	assert.True(t, IsStatoFinale(TipologiaConsegna, StatoAnnullato))

	assert.False(t, IsStatoFinale(TipologiaProduzione, StatoPianificato))
	assert.False(t, IsStatoFinale(TipologiaConsegna, StatoCaricato))

	// Unknown states are not terminal, they are simply invalid
	assert.False(t, IsStatoFinale(TipologiaProduzione, "inesistente"))
}

func TestIsStatoValido(t *testing.T) {
	assert.True(t, IsStatoValido(TipologiaProduzione, StatoInProduzione))
	assert.True(t, IsStatoValido(TipologiaConsegna, StatoProntoCarico))

	assert.False(t, IsStatoValido(TipologiaProduzione, StatoProntoCarico))
	assert.False(t, IsStatoValido(TipologiaConsegna, StatoInProduzione))
	assert.False(t, IsStatoValido(TipologiaConsegna, "inesistente"))
}

func TestRichiedeNoteAnnullamento(t *testing.T) {
	assert.True(t, RichiedeNoteAnnullamento(StatoAnnullato))
	assert.False(t, RichiedeNoteAnnullamento(StatoCompletato))
	assert.False(t, RichiedeNoteAnnullamento(StatoCaricato))
}

func TestRichiedeDatiCarico(t *testing.T) {
	assert.True(t, RichiedeDatiCarico(StatoCaricato))
	assert.False(t, RichiedeDatiCarico(StatoPartito))
	assert.False(t, RichiedeDatiCarico(StatoAnnullato))
}

func TestStatoIniziale(t *testing.T) {
	assert.Equal(t, StatoPianificato, StatoIniziale())
}

func TestTransizioniPossibili_RestituisceCopia(t *testing.T) {
	possibili := TransizioniPossibili(TipologiaProduzione, StatoPianificato)
	possibili[0] = "corrotto"

	// The underlying table must stay untouched
	assert.ElementsMatch(t,
		[]Stato{StatoPresoInCarico, StatoAnnullato},
		TransizioniPossibili(TipologiaProduzione, StatoPianificato))
}
