package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/document"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/history"
	"github.com/jhoicas/Cotizador-api/internal/application/quoting"
	"github.com/jhoicas/Cotizador-api/internal/domain/draft"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Cotizador-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/Cotizador-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := history.NewStore(memory.NewHistoryRepository(), zerolog.Nop())
	require.NoError(t, store.Load(context.Background()))

	pdfGen, err := infrapdf.NewMarotoPDFGenerator("")
	require.NoError(t, err)

	today := func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) }
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:   "cotizador-test",
		Drafts:    quoting.NewDraftUseCase(entity.CompanyInfo{Name: "프로다코퍼레이션"}, today),
		Generate:  quoting.NewGenerateQuoteUseCase(store, zerolog.Nop()),
		History:   quoting.NewHistoryUseCase(store),
		Documents: document.NewUseCase(store, pdfGen, infraxlsx.NewSheetGenerator()),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func sampleDraft() draft.Draft {
	return draft.Draft{
		Company: entity.CompanyInfo{Name: "프로다코퍼레이션"},
		Client:  entity.ClientInfo{CompanyName: "ACME", ProjectName: "런칭", QuoteDate: "2025-01-15"},
		Services: []entity.ServiceLine{{
			ID: 1, Name: "유튜브", Quantity: 3, Unit: entity.UnitMonth,
			OriginalPrice: decimal.NewFromInt(800000), DiscountType: entity.DiscountPercent, DiscountValue: decimal.NewFromInt(10),
		}},
		Discount: decimal.NewFromInt(5),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "cotizador-test", body["service"])
}

func TestTemplates_List(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/templates", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.TemplateListResponse](t, resp)
	assert.Len(t, out.Items, 9)
}

func TestLines_Price(t *testing.T) {
	app := buildTestApp(t)
	line := entity.ServiceLine{ID: 1, Quantity: 1, OriginalPrice: decimal.NewFromInt(100000), DiscountType: entity.DiscountAmount, DiscountValue: decimal.NewFromInt(20000)}

	resp := do(t, app, http.MethodPost, "/api/lines/price", map[string]any{"line": line, "field": "quantity", "value": "4"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[entity.ServiceLine](t, resp)
	assert.Equal(t, 4, got.Quantity)
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(80000)))
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(320000)))

	resp = do(t, app, http.MethodPost, "/api/lines/price", map[string]any{"line": line, "field": "id", "value": 9})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", decode[dto.ErrorResponse](t, resp).Code)
}

func TestLines_Move(t *testing.T) {
	app := buildTestApp(t)
	lines := []entity.ServiceLine{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	resp := do(t, app, http.MethodPost, "/api/lines/move", dto.MoveLinesRequest{Lines: lines, From: 2, To: 0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.MoveLinesResponse](t, resp)
	require.Len(t, out.Lines, 3)
	assert.Equal(t, "C", out.Lines[0].Name)
	assert.Equal(t, "A", out.Lines[1].Name)

	resp = do(t, app, http.MethodPost, "/api/lines/move", dto.MoveLinesRequest{Lines: lines, From: -1, To: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDrafts_NewYAddLine(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/drafts/new", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	d := decode[draft.Draft](t, resp)
	assert.Equal(t, "2025-01-15", d.Client.QuoteDate)
	assert.Equal(t, "프로다코퍼레이션", d.Company.Name)

	tpl := entity.ServiceTemplate{Name: "영상제작", Description: "영상", OriginalPrice: decimal.NewFromInt(1500000)}
	resp = do(t, app, http.MethodPost, "/api/drafts/lines", dto.AddLineRequest{Draft: d, Template: &tpl})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	d = decode[draft.Draft](t, resp)
	require.Len(t, d.Services, 1)
	assert.Equal(t, entity.UnitPiece, d.Services[0].Unit)
	assert.True(t, d.Services[0].Amount.Equal(decimal.NewFromInt(1500000)))
}

func TestQuotes_SinLineasDevuelve422(t *testing.T) {
	app := buildTestApp(t)
	in := sampleDraft()
	in.Services = nil

	resp := do(t, app, http.MethodPost, "/api/quotes", in)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	list := decode[dto.HistoryListResponse](t, do(t, app, http.MethodGet, "/api/history", nil))
	assert.Empty(t, list.Items)
}

func TestQuotes_BodyInvalido(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuotes_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)

	// Generar
	resp := do(t, app, http.MethodPost, "/api/quotes", sampleDraft())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	gen := decode[dto.GenerateQuoteResponse](t, resp)
	require.NotEmpty(t, gen.RecordID)
	assert.True(t, gen.Quote.Subtotal.Equal(decimal.NewFromInt(2160000)))
	assert.True(t, gen.Quote.VAT.Equal(decimal.NewFromInt(216000)))
	assert.True(t, gen.Quote.Total.Equal(decimal.NewFromInt(2376000)))
	assert.Equal(t, "2025-02-14", gen.Quote.ClientInfo.ValidUntil)

	// Historial y recientes
	list := decode[dto.HistoryListResponse](t, do(t, app, http.MethodGet, "/api/history", nil))
	require.Len(t, list.Items, 1)
	assert.Equal(t, gen.RecordID, list.Items[0].ID)

	recent := decode[dto.TemplateListResponse](t, do(t, app, http.MethodGet, "/api/templates/recent", nil))
	require.Len(t, recent.Items, 1)
	assert.Equal(t, "유튜브", recent.Items[0].Name)

	// Cargar registro
	rec := decode[dto.HistoryRecordResponse](t, do(t, app, http.MethodGet, "/api/history/"+gen.RecordID, nil))
	assert.Equal(t, "ACME", rec.Draft.Client.CompanyName)
	assert.Equal(t, "2025-01-15", rec.Draft.Client.QuoteDate)
	require.Len(t, rec.Draft.Services, 1)
	assert.True(t, rec.Draft.Discount.Equal(decimal.NewFromInt(5)))

	// Documentos
	resp = do(t, app, http.MethodGet, "/api/history/"+gen.RecordID+"/pdf", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, document.ContentTypePDF, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	resp = do(t, app, http.MethodGet, "/api/history/"+gen.RecordID+"/xlsx", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, document.ContentTypeXLSX, resp.Header.Get("Content-Type"))

	resp = do(t, app, http.MethodPost, "/api/quotes/pdf", gen.Quote)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	pdf, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	// Quitar reciente (nombre con Hangul en la ruta)
	resp = do(t, app, http.MethodDelete, "/api/templates/recent/"+url.PathEscape("유튜브"), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	recent = decode[dto.TemplateListResponse](t, do(t, app, http.MethodGet, "/api/templates/recent", nil))
	assert.Empty(t, recent.Items)

	// Borrar registro
	resp = do(t, app, http.MethodDelete, "/api/history/"+gen.RecordID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/history/"+gen.RecordID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodGet, "/api/history/"+gen.RecordID+"/pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
