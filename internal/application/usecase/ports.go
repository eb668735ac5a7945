package usecase

import (
	"context"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

// ReceiptPDFGenerator puerto para generar el comprobante PDF de un pedido.
// Lo implementa infrastructure/pdf.MarotoReceiptGenerator.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, restaurant *entity.Restaurant, user *entity.User) ([]byte, error)
}
