package user

import (
	"errors"
	"regexp"
	"strings"

	"gin-storefront/internal/pkg/patch"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

const DefaultCountry = "UK"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

// Profile holds the free-form account fields. Empty strings mean "unset".
type Profile struct {
	Name           string
	Nickname       string
	Phone          string
	Location       string
	Preferences    string
	FavoriteStyles string
}

// Address is the user's default delivery address.
type Address struct {
	FullName     string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Country      string
}

// HasLine1 reports whether the address carries enough data to be stored.
func (a Address) HasLine1() bool {
	return strings.TrimSpace(a.AddressLine1) != ""
}

// Normalize fills the defaults applied when saving a default address.
func (a Address) Normalize(p Profile, fallbackName, fallbackPhone string) Address {
	a.Country = patch.FirstNonEmpty(a.Country, DefaultCountry)
	a.FullName = patch.FirstNonEmpty(a.FullName, p.Name, fallbackName)
	a.Phone = patch.FirstNonEmpty(a.Phone, p.Phone, fallbackPhone)
	return a
}

func EmptyAddress() Address {
	return Address{Country: DefaultCountry}
}
