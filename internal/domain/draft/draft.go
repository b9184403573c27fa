// Package draft modela el estado editable de una cotización antes de generarla.
// La interfaz de usuario es dueña del Draft; aquí solo hay transformaciones puras.
package draft

import (
	"fmt"
	"time"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// Draft estado del formulario: emisor, cliente, líneas y descuento global.
type Draft struct {
	Company        entity.CompanyInfo   `json:"companyInfo"`
	Client         entity.ClientInfo    `json:"clientInfo"`
	Services       []entity.ServiceLine `json:"services"`
	Discount       decimal.Decimal      `json:"discount"`
	DiscountReason string               `json:"discountReason"`
}

// New crea un borrador vacío con la fecha de hoy.
func New(company entity.CompanyInfo, today time.Time) Draft {
	return Draft{
		Company:  company,
		Client:   entity.ClientInfo{QuoteDate: today.Format(entity.DateLayout)},
		Services: []entity.ServiceLine{},
	}
}

// NextID siguiente identificador de línea: max(IDs)+1, o 1 si no hay líneas.
func (d Draft) NextID() int {
	next := 1
	for _, s := range d.Services {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	return next
}

// AddLine agrega una línea en blanco al final.
func (d Draft) AddLine() Draft {
	line := entity.ServiceLine{
		ID:           d.NextID(),
		Quantity:     1,
		Unit:         entity.UnitMonth,
		DiscountType: entity.DiscountNone,
	}
	return d.withAppended(pricing.Recalculate(line))
}

// AddFromTemplate agrega una línea sembrada con la plantilla.
func (d Draft) AddFromTemplate(t entity.ServiceTemplate) Draft {
	line := entity.ServiceLine{
		ID:            d.NextID(),
		Name:          t.Name,
		Description:   t.Description,
		Quantity:      1,
		Unit:          catalog.UnitFor(t.Name),
		OriginalPrice: t.OriginalPrice,
		DiscountType:  entity.DiscountNone,
	}
	return d.withAppended(pricing.Recalculate(line))
}

// UpdateLine aplica un evento de edición a la línea id.
func (d Draft) UpdateLine(id int, field pricing.Field, value string) (Draft, error) {
	idx := d.indexOf(id)
	if idx < 0 {
		return d, fmt.Errorf("línea %d: %w", id, domain.ErrNotFound)
	}
	updated, err := pricing.ApplyLineEdit(d.Services[idx], field, value)
	if err != nil {
		return d, err
	}
	out := d.clone()
	out.Services[idx] = updated
	return out, nil
}

// RemoveLine quita la línea id; si no existe no hace nada.
func (d Draft) RemoveLine(id int) Draft {
	out := d
	out.Services = make([]entity.ServiceLine, 0, len(d.Services))
	for _, s := range d.Services {
		if s.ID != id {
			out.Services = append(out.Services, s)
		}
	}
	return out
}

// MoveLine mueve la línea de la posición from a la posición to.
func (d Draft) MoveLine(from, to int) (Draft, error) {
	moved, err := MoveLine(d.Services, from, to)
	if err != nil {
		return d, err
	}
	out := d
	out.Services = moved
	return out, nil
}

// Restore repuebla un borrador desde un snapshot del historial.
// ValidUntil se descarta: se vuelve a derivar al generar.
func Restore(q entity.Quote) Draft {
	return Draft{
		Company:        q.CompanyInfo,
		Client:         q.ClientInfo.ClientInfo,
		Services:       append([]entity.ServiceLine{}, q.Services...),
		Discount:       q.Discount,
		DiscountReason: q.DiscountReason,
	}
}

// MoveLine devuelve una copia de lines con el elemento en from reubicado en to;
// los intermedios se desplazan una posición. No duplica ni pierde elementos.
func MoveLine(lines []entity.ServiceLine, from, to int) ([]entity.ServiceLine, error) {
	n := len(lines)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("%w: mover %d → %d con %d líneas", domain.ErrInvalidInput, from, to, n)
	}
	out := make([]entity.ServiceLine, 0, n)
	out = append(out, lines[:from]...)
	out = append(out, lines[from+1:]...)
	moved := lines[from]
	out = append(out[:to], append([]entity.ServiceLine{moved}, out[to:]...)...)
	return out, nil
}

func (d Draft) indexOf(id int) int {
	for i, s := range d.Services {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (d Draft) clone() Draft {
	out := d
	out.Services = append([]entity.ServiceLine(nil), d.Services...)
	return out
}

func (d Draft) withAppended(line entity.ServiceLine) Draft {
	out := d.clone()
	out.Services = append(out.Services, line)
	return out
}
