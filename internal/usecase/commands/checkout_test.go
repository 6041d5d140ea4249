//go:build unit

package commands

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMergeCartItems(t *testing.T) {
	shampoo := uuid.New()
	wax := uuid.New()

	t.Run("duplicate lines combine into one quantity", func(t *testing.T) {
		merged := mergeCartItems([]CartItemParams{
			{ProductID: shampoo, Quantity: 2},
			{ProductID: wax, Quantity: 1},
			{ProductID: shampoo, Quantity: 3},
		})

		assert.Equal(t, []CartItemParams{
			{ProductID: shampoo, Quantity: 5},
			{ProductID: wax, Quantity: 1},
		}, merged)
	})

	t.Run("distinct lines pass through unchanged", func(t *testing.T) {
		items := []CartItemParams{
			{ProductID: shampoo, Quantity: 1},
			{ProductID: wax, Quantity: 2},
		}

		assert.Equal(t, items, mergeCartItems(items))
	})

	t.Run("empty cart stays empty", func(t *testing.T) {
		assert.Empty(t, mergeCartItems(nil))
	})
}
