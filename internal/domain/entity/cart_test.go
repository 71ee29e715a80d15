package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func shirt() Product {
	return Product{ID: "m1", Name: "Shirt", Price: 1499}
}

func tee() Product {
	return Product{ID: "m4", Name: "Tee", Price: 599}
}

func TestCart_Add_MergesByVariantKey(t *testing.T) {
	cart := NewCart()

	cart.Add(CartLine{Product: shirt(), Quantity: 1, Size: "M", Color: "White"})
	cart.Add(CartLine{Product: shirt(), Quantity: 2, Size: "M", Color: "White"})

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCart_Add_DifferentVariantIsNewLine(t *testing.T) {
	cart := NewCart()

	cart.Add(CartLine{Product: shirt(), Quantity: 1, Size: "M", Color: "White"})
	cart.Add(CartLine{Product: shirt(), Quantity: 1, Size: "M", Color: "Blue"})
	cart.Add(CartLine{Product: shirt(), Quantity: 1, Size: "L", Color: "White"})

	assert.Len(t, cart.Items, 3)
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()

	cart.Add(CartLine{Product: shirt(), Quantity: 1, Size: "M", Color: "White"})
	cart.Add(CartLine{Product: tee(), Quantity: 1, Size: "S", Color: "Black"})
	// Merging into the first line must not reorder it.
	cart.Add(CartLine{Product: shirt(), Quantity: 1, Size: "M", Color: "White"})

	assert.Equal(t, "m1", cart.Items[0].Product.ID)
	assert.Equal(t, "m4", cart.Items[1].Product.ID)
}

func TestCart_Remove_AbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(CartLine{Product: shirt(), Quantity: 1, Size: "M", Color: "White"})

	cart.Remove("m1", "XL", "White")

	assert.Len(t, cart.Items, 1)
}

func TestCart_UpdateQuantity_NonPositiveRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		cart := NewCart()
		cart.Add(CartLine{Product: shirt(), Quantity: 2, Size: "M", Color: "White"})

		cart.UpdateQuantity("m1", "M", "White", quantity)

		assert.Empty(t, cart.Items)
	}
}

func TestCart_DerivedValues(t *testing.T) {
	cart := NewCart()
	cart.Add(CartLine{Product: shirt(), Quantity: 2, Size: "M", Color: "White"})
	cart.Add(CartLine{Product: tee(), Quantity: 3, Size: "S", Color: "Black"})

	assert.Equal(t, int64(2*1499+3*599), cart.Total())
	assert.Equal(t, 5, cart.ItemCount())

	cart.Clear()

	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.ItemCount())
}
