//go:build unit || e2e

package builder

import (
	reqdto "gin-storefront/internal/handler/dto/request"
)

// FixturePassword is the plain-text password behind every dbtest user hash.
const FixturePassword = "password123"

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "shopper@example.com",
		Password: FixturePassword,
	}
}

// ForAccount logs in as another fixture account with the shared fixture password.
func (a *AuthBuilder) ForAccount(email string) *AuthBuilder {
	a.Email = email
	a.Password = FixturePassword
	return a
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}
