package pricing

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Field campo editable de una línea (nombres iguales a las claves JSON).
type Field string

const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldQuantity       Field = "quantity"
	FieldUnit           Field = "unit"
	FieldOriginalPrice  Field = "originalPrice"
	FieldDiscountType   Field = "discountType"
	FieldDiscountValue  Field = "discountValue"
	FieldDiscountReason Field = "discountReason"
)

// AffectsPrice indica si editar el campo obliga a recalcular UnitPrice/Amount.
func (f Field) AffectsPrice() bool {
	switch f {
	case FieldQuantity, FieldOriginalPrice, FieldDiscountType, FieldDiscountValue:
		return true
	}
	return false
}

// ApplyLineEdit aplica el evento de edición (campo, valor) sobre una copia de la línea.
// Cantidad y precio se leen como entero y el valor de descuento como decimal;
// una entrada no numérica se toma como 0. Campos de texto no recalculan el precio.
func ApplyLineEdit(line entity.ServiceLine, field Field, value string) (entity.ServiceLine, error) {
	switch field {
	case FieldName:
		line.Name = value
	case FieldDescription:
		line.Description = value
	case FieldUnit:
		line.Unit = value
	case FieldDiscountReason:
		line.DiscountReason = value
	case FieldQuantity:
		line.Quantity = int(CoerceInt(value))
	case FieldOriginalPrice:
		line.OriginalPrice = decimal.NewFromInt(CoerceInt(value))
	case FieldDiscountType:
		line.DiscountType = entity.DiscountType(strings.TrimSpace(value))
	case FieldDiscountValue:
		line.DiscountValue = CoerceDecimal(value)
	default:
		return line, fmt.Errorf("%w: campo %q no editable", domain.ErrInvalidInput, field)
	}
	if field.AffectsPrice() {
		line = Recalculate(line)
	}
	return line, nil
}

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?|\.\d+)([eE][+-]?\d+)?`)
)

// CoerceInt toma el prefijo entero de s ("12abc" → 12, "3.7" → 3); sin dígitos devuelve 0.
// Un valor fuera de rango queda en el límite de int64.
func CoerceInt(s string) int64 {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return n
	}
	if err != nil {
		return 0
	}
	return n
}

// CoerceDecimal toma el prefijo numérico de s ("12.5%" → 12.5); sin número devuelve 0.
func CoerceDecimal(s string) decimal.Decimal {
	m := leadingFloat.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return decimal.Zero
	}
	sign, digits := m[1], m[2]
	if sign == "+" {
		sign = ""
	}
	if strings.HasPrefix(digits, ".") {
		digits = "0" + digits
	}
	d, err := decimal.NewFromString(sign + digits + m[3])
	if err != nil {
		return decimal.Zero
	}
	return d
}
