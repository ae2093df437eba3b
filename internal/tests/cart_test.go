package tests

import (
	"sync"
	"testing"

	"buntudelice/internal/domain"
	"buntudelice/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCartStore_AddReplacesExistingLine(t *testing.T) {
	cart := service.NewCartStore()
	userID := uuid.New()
	itemID := uuid.New()

	cart.Add(userID, domain.CartItem{MenuItemID: itemID, Name: "Poulet", Price: 5500, Quantity: 1})
	cart.Add(userID, domain.CartItem{MenuItemID: uuid.New(), Name: "Jus", Price: 1000, Quantity: 2})

	// Re-adding the same item replaces quantity, it never sums.
	cart.Add(userID, domain.CartItem{MenuItemID: itemID, Name: "Poulet", Price: 5500, Quantity: 3})

	lines, total := cart.Snapshot(userID)
	assert.Len(t, lines, 2)
	assert.Equal(t, itemID, lines[0].MenuItemID, "replaced line keeps its position")
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 5500*3+1000*2, int(total))
}

func TestCartStore_SetQuantityZeroRemoves(t *testing.T) {
	cart := service.NewCartStore()
	userID := uuid.New()
	itemID := uuid.New()

	cart.Add(userID, domain.CartItem{MenuItemID: itemID, Price: 2000, Quantity: 2})
	cart.SetQuantity(userID, itemID, 0)

	lines, total := cart.Snapshot(userID)
	assert.Empty(t, lines)
	assert.Zero(t, total)
}

func TestCartStore_AddNonPositiveQuantityRemoves(t *testing.T) {
	cart := service.NewCartStore()
	userID := uuid.New()
	itemID := uuid.New()

	cart.Add(userID, domain.CartItem{MenuItemID: itemID, Price: 2000, Quantity: 2})
	cart.Add(userID, domain.CartItem{MenuItemID: itemID, Price: 2000, Quantity: -1})

	lines, _ := cart.Snapshot(userID)
	assert.Empty(t, lines)
}

func TestCartStore_RemoveIsIdempotent(t *testing.T) {
	cart := service.NewCartStore()
	userID := uuid.New()
	itemID := uuid.New()

	cart.Remove(userID, itemID)
	cart.Add(userID, domain.CartItem{MenuItemID: itemID, Price: 1500, Quantity: 1})
	cart.Remove(userID, itemID)
	cart.Remove(userID, itemID)

	lines, _ := cart.Snapshot(userID)
	assert.Empty(t, lines)
}

func TestCartStore_CartsAreIsolatedPerUser(t *testing.T) {
	cart := service.NewCartStore()
	alice := uuid.New()
	bob := uuid.New()

	cart.Add(alice, domain.CartItem{MenuItemID: uuid.New(), Price: 1000, Quantity: 1})

	lines, _ := cart.Snapshot(bob)
	assert.Empty(t, lines)

	cart.Clear(alice)
	lines, _ = cart.Snapshot(alice)
	assert.Empty(t, lines)
}

func TestCartStore_ConcurrentAccess(t *testing.T) {
	cart := service.NewCartStore()
	userID := uuid.New()
	itemID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			cart.Add(userID, domain.CartItem{MenuItemID: itemID, Price: 100, Quantity: q + 1})
			cart.Snapshot(userID)
		}(i)
	}
	wg.Wait()

	lines, _ := cart.Snapshot(userID)
	assert.Len(t, lines, 1)
}
