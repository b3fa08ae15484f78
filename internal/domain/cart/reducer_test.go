package cart

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

func item(id uuid.UUID, name string, price float64, qty int) entity.CartItem {
	return entity.CartItem{ProductID: id, Name: name, Price: price, Quantity: qty}
}

func TestReduce(t *testing.T) {
	t.Parallel()

	mug := uuid.New()
	vase := uuid.New()

	tests := []struct {
		name   string
		state  entity.Cart
		action Action
		want   []entity.CartItem
	}{
		{
			name:   "add to empty cart",
			state:  entity.Cart{},
			action: AddItem{Item: item(mug, "Mug", 12.5, 1)},
			want:   []entity.CartItem{item(mug, "Mug", 12.5, 1)},
		},
		{
			name:   "add existing product merges quantities",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 2)}},
			action: AddItem{Item: item(mug, "Mug", 12.5, 3)},
			want:   []entity.CartItem{item(mug, "Mug", 12.5, 5)},
		},
		{
			name:   "add with non-positive quantity is a no-op",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 1)}},
			action: AddItem{Item: item(vase, "Vase", 30, 0)},
			want:   []entity.CartItem{item(mug, "Mug", 12.5, 1)},
		},
		{
			name:   "add keeps insertion order",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 1)}},
			action: AddItem{Item: item(vase, "Vase", 30, 1)},
			want:   []entity.CartItem{item(mug, "Mug", 12.5, 1), item(vase, "Vase", 30, 1)},
		},
		{
			name:   "remove drops the line",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 1), item(vase, "Vase", 30, 1)}},
			action: RemoveItem{ProductID: mug},
			want:   []entity.CartItem{item(vase, "Vase", 30, 1)},
		},
		{
			name:   "remove absent product is a no-op",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 1)}},
			action: RemoveItem{ProductID: vase},
			want:   []entity.CartItem{item(mug, "Mug", 12.5, 1)},
		},
		{
			name:   "set quantity replaces the count",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 2)}},
			action: SetQuantity{ProductID: mug, Quantity: 7},
			want:   []entity.CartItem{item(mug, "Mug", 12.5, 7)},
		},
		{
			name:   "set quantity to zero removes the line",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 2), item(vase, "Vase", 30, 1)}},
			action: SetQuantity{ProductID: mug, Quantity: 0},
			want:   []entity.CartItem{item(vase, "Vase", 30, 1)},
		},
		{
			name:   "set quantity on absent product is a no-op",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 2)}},
			action: SetQuantity{ProductID: vase, Quantity: 4},
			want:   []entity.CartItem{item(mug, "Mug", 12.5, 2)},
		},
		{
			name:   "clear empties everything",
			state:  entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 2), item(vase, "Vase", 30, 1)}},
			action: Clear{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Reduce(tt.state, tt.action)

			if len(got.Items) != len(tt.want) {
				t.Fatalf("Reduce() produced %d items, want %d", len(got.Items), len(tt.want))
			}
			for i := range tt.want {
				if got.Items[i] != tt.want[i] {
					t.Fatalf("Reduce() item %d = %+v, want %+v", i, got.Items[i], tt.want[i])
				}
			}
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	mug := uuid.New()
	state := entity.Cart{Items: []entity.CartItem{item(mug, "Mug", 12.5, 2)}}

	next := Reduce(state, SetQuantity{ProductID: mug, Quantity: 9})

	if state.Items[0].Quantity != 2 {
		t.Fatalf("input state was mutated: quantity = %d, want 2", state.Items[0].Quantity)
	}
	if next.Items[0].Quantity != 9 {
		t.Fatalf("next state quantity = %d, want 9", next.Items[0].Quantity)
	}
}
