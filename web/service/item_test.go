package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndListItems(t *testing.T) {
	setup(t)

	userService := UserService{}
	itemService := ItemService{}

	alice, err := userService.Register("alice", "pw1")
	assert.NoError(t, err)

	milk, err := itemService.AddItem(alice.Id, "buy milk")
	assert.NoError(t, err)
	assert.NotZero(t, milk.Id)
	assert.Equal(t, "buy milk", milk.Text)

	bread, err := itemService.AddItem(alice.Id, "buy bread")
	assert.NoError(t, err)

	items, err := itemService.GetItems(alice.Id)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, milk.Id, items[0].Id)
	assert.Equal(t, bread.Id, items[1].Id)
}

func TestItemsAreOwnerScoped(t *testing.T) {
	setup(t)

	userService := UserService{}
	itemService := ItemService{}

	alice, _ := userService.Register("alice", "pw1")
	bob, _ := userService.Register("bob", "pw2")

	item, err := itemService.AddItem(alice.Id, "alice's item")
	assert.NoError(t, err)

	bobItems, err := itemService.GetItems(bob.Id)
	assert.NoError(t, err)
	assert.Empty(t, bobItems)

	// Bob deleting Alice's item id is a no-op on her collection.
	assert.NoError(t, itemService.DelItem(bob.Id, item.Id))
	aliceItems, err := itemService.GetItems(alice.Id)
	assert.NoError(t, err)
	assert.Len(t, aliceItems, 1)
}

func TestDelItemIsIdempotent(t *testing.T) {
	setup(t)

	userService := UserService{}
	itemService := ItemService{}

	alice, _ := userService.Register("alice", "pw1")
	item, err := itemService.AddItem(alice.Id, "buy milk")
	assert.NoError(t, err)

	assert.NoError(t, itemService.DelItem(alice.Id, item.Id))
	assert.NoError(t, itemService.DelItem(alice.Id, item.Id))
	assert.NoError(t, itemService.DelItem(alice.Id, 9999))

	items, err := itemService.GetItems(alice.Id)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	setup(t)

	userService := UserService{}
	itemService := ItemService{}

	alice, _ := userService.Register("alice", "pw1")

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = itemService.AddItem(alice.Id, fmt.Sprintf("item %d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		assert.NoError(t, errs[i])
	}

	items, err := itemService.GetItems(alice.Id)
	assert.NoError(t, err)
	assert.Len(t, items, n)
}
