package service

import (
	"list-ui/database"
	"list-ui/database/model"
)

// ItemService manages list items. Every query is scoped by the owning
// user's id; authorization is implicit in that scoping.
type ItemService struct{}

// GetItems returns the user's items in insertion order.
func (s *ItemService) GetItems(userId int) ([]*model.Item, error) {
	db := database.GetDB()

	items := make([]*model.Item, 0)
	err := db.Model(model.Item{}).
		Where("user_id = ?", userId).
		Order("id asc").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem appends an item to the user's collection and returns it with its
// assigned id. The insert is a single row, so concurrent additions for the
// same user cannot overwrite each other.
func (s *ItemService) AddItem(userId int, text string) (*model.Item, error) {
	db := database.GetDB()

	item := &model.Item{
		UserId: userId,
		Text:   text,
	}
	if err := db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DelItem removes the item with the given id from the user's own collection.
// Deleting an id that is absent (or owned by someone else) is a no-op.
func (s *ItemService) DelItem(userId int, itemId int) error {
	db := database.GetDB()

	return db.
		Where("id = ? and user_id = ?", itemId, userId).
		Delete(model.Item{}).
		Error
}
