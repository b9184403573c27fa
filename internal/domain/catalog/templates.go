// Package catalog contiene las plantillas de servicio incluidas con el sistema.
package catalog

import (
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var builtIn = []entity.ServiceTemplate{
	{Name: "인스타그램", Description: "인스타그램 계정 운영 및 콘텐츠 제작", OriginalPrice: decimal.NewFromInt(800000)},
	{Name: "네이버블로그", Description: "네이버 블로그 포스팅 및 SEO 최적화", OriginalPrice: decimal.NewFromInt(600000)},
	{Name: "유튜브", Description: "유튜브 채널 운영 및 영상 최적화", OriginalPrice: decimal.NewFromInt(1200000)},
	{Name: "페이스북", Description: "페이스북 페이지 운영 및 광고 관리", OriginalPrice: decimal.NewFromInt(700000)},
	{Name: "카카오톡", Description: "카카오톡 채널 운영 및 메시지 마케팅", OriginalPrice: decimal.NewFromInt(500000)},
	{Name: "영상제작", Description: "브랜드 홍보영상 및 콘텐츠 영상 제작", OriginalPrice: decimal.NewFromInt(1500000)},
	{Name: "제품촬영", Description: "상품 사진 촬영 및 편집", OriginalPrice: decimal.NewFromInt(800000)},
	{Name: "인플루언서마케팅", Description: "인플루언서 섭외 및 캠페인 진행", OriginalPrice: decimal.NewFromInt(1000000)},
	{Name: "매체광고", Description: "온라인 매체 광고 기획 및 집행", OriginalPrice: decimal.NewFromInt(900000)},
}

// Servicios de operación de canal: se cotizan por mes.
var monthly = map[string]bool{
	"인스타그램":  true,
	"네이버블로그": true,
	"유튜브":    true,
	"페이스북":   true,
	"카카오톡":   true,
	"매체광고":   true,
}

// BuiltIn devuelve una copia del catálogo fijo.
func BuiltIn() []entity.ServiceTemplate {
	return append([]entity.ServiceTemplate(nil), builtIn...)
}

// UnitFor unidad por defecto de una línea creada desde la plantilla name.
func UnitFor(name string) string {
	if monthly[name] {
		return entity.UnitMonth
	}
	return entity.UnitPiece
}
