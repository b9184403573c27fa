package pricing_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/pricing"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCalculateLinePrice(t *testing.T) {
	tests := []struct {
		name       string
		price      decimal.Decimal
		qty        int
		dtype      entity.DiscountType
		value      decimal.Decimal
		wantUnit   decimal.Decimal
		wantAmount decimal.Decimal
	}{
		{"sin descuento", d(800000), 2, entity.DiscountNone, decimal.Zero, d(800000), d(1600000)},
		{"tipo desconocido se trata como none", d(500), 3, entity.DiscountType("bogus"), d(100), d(500), d(1500)},
		{"monto fijo", d(800000), 1, entity.DiscountAmount, d(100000), d(700000), d(700000)},
		{"monto mayor al precio no queda negativo", d(1000), 5, entity.DiscountAmount, d(5000), d(0), d(0)},
		{"porcentaje 10", d(800000), 1, entity.DiscountPercent, d(10), d(720000), d(720000)},
		{"porcentaje con redondeo", d(999), 1, entity.DiscountPercent, decimal.RequireFromString("33.3"), d(666), d(666)},
		{"porcentaje > 100 pasa aritméticamente", d(1000), 1, entity.DiscountPercent, d(150), d(-500), d(-500)},
		{"porcentaje negativo pasa aritméticamente", d(1000), 2, entity.DiscountPercent, d(-10), d(1100), d(2200)},
		{"gratis ignora el valor", d(1200000), 4, entity.DiscountFree, d(30), d(0), d(0)},
		{"cantidad cero", d(700000), 0, entity.DiscountNone, decimal.Zero, d(700000), d(0)},
		{"precio unitario redondeado antes del monto", decimal.RequireFromString("100.5"), 3, entity.DiscountNone, decimal.Zero, d(101), d(303)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, amount := pricing.CalculateLinePrice(tt.price, tt.qty, tt.dtype, tt.value)
			assert.True(t, tt.wantUnit.Equal(unit), "unitPrice: got %s want %s", unit, tt.wantUnit)
			assert.True(t, tt.wantAmount.Equal(amount), "amount: got %s want %s", amount, tt.wantAmount)
		})
	}
}

// Para todo v en [0,100]: unit = round(p*(1-v/100)) y amount = round(unit*qty).
func TestCalculateLinePrice_PorcentajeEnRango(t *testing.T) {
	price := d(123457)
	for v := int64(0); v <= 100; v++ {
		for _, qty := range []int{1, 3, 7} {
			unit, amount := pricing.CalculateLinePrice(price, qty, entity.DiscountPercent, d(v))
			wantUnit := price.Mul(d(1).Sub(d(v).Div(d(100)))).Round(0)
			require.True(t, wantUnit.Equal(unit), "v=%d", v)
			require.True(t, wantUnit.Mul(d(int64(qty))).Round(0).Equal(amount), "v=%d qty=%d", v, qty)
			assert.True(t, unit.Equal(unit.Round(0)), "unitPrice debe ser entero")
		}
	}
}

func TestCalculateLinePrice_Idempotente(t *testing.T) {
	line := entity.ServiceLine{
		OriginalPrice: d(333333), Quantity: 3,
		DiscountType: entity.DiscountPercent, DiscountValue: decimal.RequireFromString("12.5"),
	}
	first := pricing.Recalculate(line)
	second := pricing.Recalculate(first)
	assert.True(t, first.UnitPrice.Equal(second.UnitPrice))
	assert.True(t, first.Amount.Equal(second.Amount))
}

func TestApplyLineEdit_RecalculaSoloCamposDePrecio(t *testing.T) {
	line := pricing.Recalculate(entity.ServiceLine{
		ID: 1, Name: "유튜브", Quantity: 1, Unit: entity.UnitMonth,
		OriginalPrice: d(1200000), DiscountType: entity.DiscountNone,
	})

	// Editar el nombre no toca los derivados, aunque estén desactualizados.
	stale := line
	stale.UnitPrice = d(1)
	renamed, err := pricing.ApplyLineEdit(stale, pricing.FieldName, "유튜브 쇼츠")
	require.NoError(t, err)
	assert.Equal(t, "유튜브 쇼츠", renamed.Name)
	assert.True(t, d(1).Equal(renamed.UnitPrice), "name no debe recalcular")

	qty, err := pricing.ApplyLineEdit(line, pricing.FieldQuantity, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, qty.Quantity)
	assert.True(t, d(3600000).Equal(qty.Amount))

	typ, err := pricing.ApplyLineEdit(qty, pricing.FieldDiscountType, "percent")
	require.NoError(t, err)
	val, err := pricing.ApplyLineEdit(typ, pricing.FieldDiscountValue, "10")
	require.NoError(t, err)
	assert.True(t, d(1080000).Equal(val.UnitPrice))
	assert.True(t, d(3240000).Equal(val.Amount))

	free, err := pricing.ApplyLineEdit(val, pricing.FieldDiscountType, "free")
	require.NoError(t, err)
	assert.True(t, free.UnitPrice.IsZero())
	assert.True(t, free.Amount.IsZero())
}

func TestApplyLineEdit_CoercionNumerica(t *testing.T) {
	line := entity.ServiceLine{Quantity: 2, OriginalPrice: d(1000), DiscountType: entity.DiscountNone}

	bad, err := pricing.ApplyLineEdit(line, pricing.FieldQuantity, "abc")
	require.NoError(t, err, "entrada no numérica no es un error")
	assert.Equal(t, 0, bad.Quantity)
	assert.True(t, bad.Amount.IsZero())

	price, err := pricing.ApplyLineEdit(line, pricing.FieldOriginalPrice, "1500.9")
	require.NoError(t, err)
	assert.True(t, d(1500).Equal(price.OriginalPrice), "el precio se lee como entero")

	empty, err := pricing.ApplyLineEdit(line, pricing.FieldOriginalPrice, "")
	require.NoError(t, err)
	assert.True(t, empty.OriginalPrice.IsZero())
}

func TestApplyLineEdit_CampoNoEditable(t *testing.T) {
	_, err := pricing.ApplyLineEdit(entity.ServiceLine{}, pricing.Field("amount"), "5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCoerce(t *testing.T) {
	intCases := map[string]int64{
		"42": 42, " 7 ": 7, "12abc": 12, "3.7": 3, "-5": -5, "+8": 8, "": 0, "x1": 0,
		// fuera de rango: queda en el límite
		"99999999999999999999":  math.MaxInt64,
		"-99999999999999999999": math.MinInt64,
	}
	for in, want := range intCases {
		assert.Equal(t, want, pricing.CoerceInt(in), "CoerceInt(%q)", in)
	}

	decCases := map[string]string{"12.5": "12.5", "12.5%": "12.5", ".5": "0.5", "-2": "-2", "+3.25": "3.25", "1e2": "100", "5.": "5", "abc": "0", "": "0"}
	for in, want := range decCases {
		got := pricing.CoerceDecimal(in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "CoerceDecimal(%q) = %s", in, got)
	}
}
