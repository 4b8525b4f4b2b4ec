package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFederatedLoginCreatesOnFirstUse(t *testing.T) {
	setup(t)

	federatedService := FederatedService{}

	user, err := federatedService.FederatedLogin(Profile{Id: "g-123", Email: "alice@example.com"})
	assert.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.Equal(t, "alice@example.com", user.Username)
	assert.Equal(t, "g-123", user.FederatedId)
	assert.Empty(t, user.Password)
}

func TestFederatedLoginIsIdempotent(t *testing.T) {
	setup(t)

	federatedService := FederatedService{}

	first, err := federatedService.FederatedLogin(Profile{Id: "g-123", Email: "alice@example.com"})
	assert.NoError(t, err)

	// Identity is pinned to the federated id; a changed provider email does
	// not rename the account.
	second, err := federatedService.FederatedLogin(Profile{Id: "g-123", Email: "renamed@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, "alice@example.com", second.Username)
}

func TestFederatedLoginNeverMergesWithLocalAccount(t *testing.T) {
	setup(t)

	userService := UserService{}
	federatedService := FederatedService{}

	local, err := userService.Register("alice@example.com", "pw1")
	assert.NoError(t, err)

	// Same email, different identity: the unique username constraint
	// surfaces instead of the accounts being merged.
	_, err = federatedService.FederatedLogin(Profile{Id: "g-123", Email: "alice@example.com"})
	assert.Error(t, err)

	stillLocal, err := userService.CheckUser("alice@example.com", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, local.Id, stillLocal.Id)
	assert.Empty(t, stillLocal.FederatedId)
}

func TestTwoFederatedAccountsCoexist(t *testing.T) {
	setup(t)

	federatedService := FederatedService{}

	a, err := federatedService.FederatedLogin(Profile{Id: "g-1", Email: "a@example.com"})
	assert.NoError(t, err)
	b, err := federatedService.FederatedLogin(Profile{Id: "g-2", Email: "b@example.com"})
	assert.NoError(t, err)
	assert.NotEqual(t, a.Id, b.Id)
}
