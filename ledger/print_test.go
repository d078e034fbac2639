package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemsToPrintSuppressesReprint(t *testing.T) {
	current := []Line{{Item: burger, Quantity: 2}}
	printed := []Line{{Item: burger, Quantity: 2}}

	pending := NewItemsToPrint(current, printed)

	assert.Empty(t, pending)
	assert.Equal(t, "", KitchenTicket("5", KindTable, pending))
}

func TestNewItemsToPrintPositiveRemainder(t *testing.T) {
	current := []Line{{Item: burger, Quantity: 3}}
	printed := []Line{{Item: burger, Quantity: 2}}

	pending := NewItemsToPrint(current, printed)

	assert.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].Quantity)
}

func TestNewItemsToPrintKeyedByComment(t *testing.T) {
	current := []Line{
		{Item: burger, Quantity: 1},
		{Item: burger, Quantity: 1, Comment: "sem cebola"},
	}
	printed := []Line{{Item: burger, Quantity: 1}}

	pending := NewItemsToPrint(current, printed)

	assert.Len(t, pending, 1)
	assert.Equal(t, "sem cebola", pending[0].Comment)
}

func TestNewItemsToPrintBaselineAhead(t *testing.T) {
	// Items removed after printing never go negative.
	current := []Line{{Item: soda, Quantity: 1}}
	printed := []Line{{Item: soda, Quantity: 4}}

	assert.Empty(t, NewItemsToPrint(current, printed))
}
