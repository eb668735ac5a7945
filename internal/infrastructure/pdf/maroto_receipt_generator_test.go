package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/pdf"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$14.99", pdf.FormatCents(1499))
	assert.Equal(t, "$0.05", pdf.FormatCents(5))
	assert.Equal(t, "$120.00", pdf.FormatCents(12000))
}

func TestGenerateReceiptPDF(t *testing.T) {
	g := pdf.NewMarotoReceiptGenerator()
	order := &entity.Order{
		ID: 9, UserID: 1, RestaurantID: 1, Status: entity.OrderStatusPending,
		Items: []entity.CartItem{
			{MenuItem: entity.MenuItem{ID: 4, RestaurantID: 1, Name: "Classic Burger", Price: 1499}, Quantity: 2},
		},
		Total:     2998,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	out, err := g.GenerateReceiptPDF(context.Background(), order,
		&entity.Restaurant{ID: 1, Name: "Urban Kitchen", Cuisine: "Fusion"},
		&entity.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateReceiptPDF_DatosFaltantes(t *testing.T) {
	_, err := pdf.NewMarotoReceiptGenerator().GenerateReceiptPDF(context.Background(), nil, nil, nil)
	assert.Error(t, err)
}
