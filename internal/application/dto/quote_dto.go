package dto

import (
	"encoding/json"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain/draft"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// Los payloads de dominio (borrador, líneas, snapshot) usan las mismas claves camelCase
// que el documento persistido; los sobres propios de la API usan snake_case.

// LineEditRequest body para POST /api/lines/price: evento (campo, valor) sobre una línea.
// Value admite string o número JSON.
type LineEditRequest struct {
	Line  entity.ServiceLine `json:"line"`
	Field string             `json:"field"`
	Value json.RawMessage    `json:"value"`
}

// RawValue devuelve Value como texto: un string JSON se desenvuelve, cualquier otro literal se usa tal cual.
func (r LineEditRequest) RawValue() string {
	raw := strings.TrimSpace(string(r.Value))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Value, &s); err == nil {
		return s
	}
	return raw
}

// MoveLinesRequest body para POST /api/lines/move.
type MoveLinesRequest struct {
	Lines []entity.ServiceLine `json:"lines"`
	From  int                  `json:"from"`
	To    int                  `json:"to"`
}

// MoveLinesResponse líneas reordenadas.
type MoveLinesResponse struct {
	Lines []entity.ServiceLine `json:"lines"`
}

// AddLineRequest body para POST /api/drafts/lines. Sin template agrega una línea en blanco.
type AddLineRequest struct {
	Draft    draft.Draft             `json:"draft"`
	Template *entity.ServiceTemplate `json:"template,omitempty"`
}

// GenerateQuoteRequest body para POST /api/quotes: el borrador completo.
type GenerateQuoteRequest = draft.Draft

// GenerateQuoteResponse cotización generada y su registro de historial.
type GenerateQuoteResponse struct {
	RecordID string       `json:"record_id"`
	Quote    entity.Quote `json:"quote"`
}
