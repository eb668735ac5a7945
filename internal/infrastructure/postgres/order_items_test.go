package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

func TestEncodeDecodeItems(t *testing.T) {
	items := []entity.CartItem{
		{MenuItem: entity.MenuItem{ID: 4, RestaurantID: 1, Name: "Classic Burger", Price: 1499, Category: "Main Course"}, Quantity: 2},
		{MenuItem: entity.MenuItem{ID: 5, RestaurantID: 1, Name: "Truffle Fries", Price: 699}, Quantity: 1},
	}
	raw, err := encodeItems(items)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"menuItem"`)
	assert.Contains(t, string(raw), `"restaurantId":1`)

	back, err := decodeItems(raw)
	require.NoError(t, err)
	assert.Equal(t, items, back)
}

func TestDecodeItems_Vacio(t *testing.T) {
	back, err := decodeItems([]byte(`[]`))
	require.NoError(t, err)
	assert.Nil(t, back)

	_, err = decodeItems([]byte(`{`))
	assert.Error(t, err)
}
