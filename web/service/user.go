// Package service provides the business logic of list-ui: credential
// verification, federated identity resolution and item ownership.
package service

import (
	"list-ui/database"
	"list-ui/database/model"
	"list-ui/logger"
	"list-ui/util/crypto"
)

// dummyHash is compared against when the username does not exist, so a
// lookup miss costs the same as a password mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService verifies local credentials and registers local accounts.
type UserService struct{}

// CheckUser validates a username/password pair. It returns
// ErrAuthenticationFailed for an unknown username and for a wrong password
// alike; storage failures propagate as-is.
func (s *UserService) CheckUser(username string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		crypto.CheckPasswordHash(dummyHash, password)
		return nil, ErrAuthenticationFailed
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrAuthenticationFailed
	}

	return user, nil
}

// Register creates a local account. An already-taken username yields
// ErrDuplicateUsername and leaves the existing record untouched.
func (s *UserService) Register(username string, password string) (*model.User, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := db.Create(user).Error; err != nil {
		// Two registrations racing for the same name: the loser hits the
		// unique index.
		if database.IsDuplicate(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	logger.Infof("registered new user %q", username)
	return user, nil
}

// GetUser resolves a user id back to the full record. A missing user is not
// an error; the caller treats it as an anonymous session.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}
