package quoting

import (
	"time"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/draft"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/pricing"
)

// DraftUseCase operaciones sin estado sobre el borrador que mantiene la interfaz.
type DraftUseCase struct {
	company entity.CompanyInfo
	now     func() time.Time
}

// NewDraftUseCase construye el caso de uso con los datos por defecto del emisor.
func NewDraftUseCase(company entity.CompanyInfo, now func() time.Time) *DraftUseCase {
	if now == nil {
		now = time.Now
	}
	return &DraftUseCase{company: company, now: now}
}

// NewDraft borrador vacío con el emisor por defecto y la fecha de hoy.
func (uc *DraftUseCase) NewDraft() draft.Draft {
	return draft.New(uc.company, uc.now())
}

// PriceLine aplica el evento de edición y devuelve la línea actualizada.
func (uc *DraftUseCase) PriceLine(in dto.LineEditRequest) (entity.ServiceLine, error) {
	return pricing.ApplyLineEdit(in.Line, pricing.Field(in.Field), in.RawValue())
}

// MoveLines reordena las líneas (from → to).
func (uc *DraftUseCase) MoveLines(in dto.MoveLinesRequest) (*dto.MoveLinesResponse, error) {
	lines, err := draft.MoveLine(in.Lines, in.From, in.To)
	if err != nil {
		return nil, err
	}
	return &dto.MoveLinesResponse{Lines: lines}, nil
}

// AddLine agrega una línea en blanco o sembrada desde la plantilla.
func (uc *DraftUseCase) AddLine(in dto.AddLineRequest) draft.Draft {
	if in.Template != nil {
		return in.Draft.AddFromTemplate(*in.Template)
	}
	return in.Draft.AddLine()
}
