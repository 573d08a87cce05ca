package generator

import (
	"time"

	"github.com/dummyforge/dummyforge/internal/schema"
)

// Provider supplies the random primitives the engine composes into field
// values. It is passed in explicitly so tests can substitute a seeded
// instance; the engine never touches a shared global randomness source.
type Provider interface {
	// FirstName is biased by gender for male/female and unbiased otherwise.
	FirstName(gender schema.Gender) string
	LastName() string

	City() string
	State() string
	StreetAddress() string
	PostalCode() string
	Latitude() float64
	Longitude() float64

	DomainName() string
	PhoneNumber() string
	Username(firstName string) string

	CreditCardNumber() string
	IBAN() string
	CurrencyCode() string

	UUID() string

	// IntBetween draws uniformly from [min, max] inclusive.
	IntBetween(min, max int) int
	Alpha(length int) string
	Numeric(length int) string
	Alphanumeric(length int) string
	UpperLetter() string
	Digit() string

	PastDate() time.Time
}
