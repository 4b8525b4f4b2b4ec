package service

import (
	"list-ui/database"
	"list-ui/database/model"
	"list-ui/logger"
)

// Profile is a verified assertion from the external identity provider. By
// the time it reaches the resolver, transport-level verification (state
// check, code exchange) has already happened.
type Profile struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

// FederatedService resolves external profiles to local user records.
type FederatedService struct{}

// FederatedLogin finds the user pinned to profile.Id, creating one on first
// login. The username is set from the profile email at creation time only;
// later logins never re-derive it, even if the provider reports a new email.
func (s *FederatedService) FederatedLogin(profile Profile) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("federated_id = ?", profile.Id).
		First(user).
		Error
	if err == nil {
		return user, nil
	}
	if !database.IsNotFound(err) {
		return nil, err
	}

	user = &model.User{
		Username:    profile.Email,
		FederatedId: profile.Id,
	}
	if err := db.Create(user).Error; err != nil {
		// A local account already holds this email as its username. The two
		// identities are distinct and must not be merged.
		return nil, err
	}

	logger.Infof("created federated user %q", profile.Email)
	return user, nil
}
