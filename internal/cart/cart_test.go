package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelligewear/zellige-api/internal/models"
)

func product(id, price string) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: price}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("p1", "10.00"))
	s.AddItem("u1", product("p1", "10.00"))

	items := s.Items("u1")
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, s.ItemCount("u1"))
}

func TestItemCountAndTotalTrackAllMutations(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("a", "10.00"))
	s.AddItem("u1", product("a", "10.00"))
	s.AddItem("u1", product("b", "25.00"))

	assert.Equal(t, 3, s.ItemCount("u1"))
	assert.Equal(t, "45", s.Total("u1").String())

	s.UpdateQuantity("u1", "a", 5)
	assert.Equal(t, 6, s.ItemCount("u1"))
	assert.Equal(t, "75", s.Total("u1").String())

	s.RemoveItem("u1", "b")
	assert.Equal(t, 5, s.ItemCount("u1"))
	assert.Equal(t, "50", s.Total("u1").String())
}

func TestTotalUsesPriceSnapshotFromAddTime(t *testing.T) {
	s := NewStore()
	p := product("p1", "10.00")
	s.AddItem("u1", p)

	// A later catalog price change must not affect the line already in
	// the cart.
	p.Price = "99.00"
	assert.Equal(t, "10", s.Total("u1").String())
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("p1", "10.00"))
	s.RemoveItem("u1", "missing")
	assert.Equal(t, 1, s.ItemCount("u1"))
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("p1", "10.00"))
	s.UpdateQuantity("u1", "p1", 0)
	assert.Empty(t, s.Items("u1"))
}

func TestClearEmptiesDerivedValues(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("a", "10.00"))
	s.AddItem("u1", product("b", "25.00"))

	s.Clear("u1")
	assert.Equal(t, 0, s.ItemCount("u1"))
	assert.True(t, s.Total("u1").IsZero())
	assert.Empty(t, s.Items("u1"))
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("a", "10.00"))
	s.AddItem("u2", product("b", "25.00"))

	assert.Equal(t, 1, s.ItemCount("u1"))
	assert.Equal(t, "10", s.Total("u1").String())
	assert.Equal(t, "25", s.Total("u2").String())
}

func TestUnparsablePriceContributesNothing(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("a", "not-a-price"))
	s.AddItem("u1", product("b", "5.50"))
	assert.Equal(t, "5.5", s.Total("u1").String())
}

func TestItemsReturnsACopy(t *testing.T) {
	s := NewStore()
	s.AddItem("u1", product("a", "10.00"))

	items := s.Items("u1")
	items[0].Quantity = 99
	assert.Equal(t, 1, s.ItemCount("u1"))
}
