// Package model defines the persisted entities of list-ui.
package model

// User is a persisted account. Local accounts carry a bcrypt password hash;
// federated accounts carry a Google subject id instead. Username doubles as
// the login key for local accounts and is the profile email for federated
// ones.
type User struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string `json:"username" gorm:"uniqueIndex;not null"`
	Password    string `json:"-"`
	FederatedId string `json:"-" gorm:"uniqueIndex:idx_users_federated_id,where:federated_id <> ''"`
	Items       []Item `json:"items" gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
}

// Item is a single list entry. It exists only as part of its owner's
// collection.
type Item struct {
	Id     int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	UserId int    `json:"-" gorm:"index;not null"`
	Text   string `json:"text" form:"text"`
}
