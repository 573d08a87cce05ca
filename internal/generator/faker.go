package generator

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/dummyforge/dummyforge/internal/schema"
)

// Gendered first-name pools. The faker library's name corpus is not split by
// sex, and gender-consistent names within a record are a hard requirement.
var (
	maleFirstNames = []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard",
		"Joseph", "Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark",
		"Steven", "Andrew", "Paul", "Joshua", "Kenneth", "Kevin", "Brian",
		"Henry", "Samuel", "Patrick", "Alexander", "Frank", "Raymond", "Jack",
	}
	femaleFirstNames = []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara",
		"Susan", "Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty",
		"Margaret", "Sandra", "Ashley", "Emily", "Donna", "Michelle", "Carol",
		"Amanda", "Laura", "Grace", "Diana", "Julia", "Rachel", "Hannah",
	}
)

// IBAN country prefixes the faker composes simplified account numbers for.
var ibanCountries = []string{"DE", "FR", "GB", "ES", "NL", "IT", "BE", "CH"}

// Faker is the production Provider, backed by gofakeit.
type Faker struct {
	f *gofakeit.Faker
}

// NewFaker returns a Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{f: gofakeit.New(0)}
}

// NewSeededFaker returns a Faker with deterministic output for the given
// seed. Used by tests.
func NewSeededFaker(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

func (g *Faker) FirstName(gender schema.Gender) string {
	switch gender {
	case schema.GenderMale:
		return maleFirstNames[g.f.Number(0, len(maleFirstNames)-1)]
	case schema.GenderFemale:
		return femaleFirstNames[g.f.Number(0, len(femaleFirstNames)-1)]
	default:
		return g.f.FirstName()
	}
}

func (g *Faker) LastName() string      { return g.f.LastName() }
func (g *Faker) City() string          { return g.f.City() }
func (g *Faker) State() string         { return g.f.State() }
func (g *Faker) StreetAddress() string { return g.f.Street() }
func (g *Faker) PostalCode() string    { return g.f.Zip() }
func (g *Faker) Latitude() float64     { return g.f.Latitude() }
func (g *Faker) Longitude() float64    { return g.f.Longitude() }
func (g *Faker) DomainName() string    { return g.f.DomainName() }
func (g *Faker) PhoneNumber() string   { return g.f.Phone() }

func (g *Faker) Username(firstName string) string {
	return fmt.Sprintf("%s%d", firstName, g.f.Number(1, 9999))
}

func (g *Faker) CreditCardNumber() string {
	return g.f.CreditCardNumber(nil)
}

// IBAN composes a simplified IBAN-shaped account number: country prefix,
// two check digits, sixteen BBAN digits.
func (g *Faker) IBAN() string {
	country := ibanCountries[g.f.Number(0, len(ibanCountries)-1)]
	return fmt.Sprintf("%s%02d%s", country, g.f.Number(10, 99), g.f.DigitN(16))
}

func (g *Faker) CurrencyCode() string { return g.f.CurrencyShort() }

func (g *Faker) UUID() string { return uuid.NewString() }

func (g *Faker) IntBetween(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return g.f.Number(min, max)
}

func (g *Faker) Alpha(length int) string {
	if length <= 0 {
		return ""
	}
	return g.f.LetterN(uint(length))
}

func (g *Faker) Numeric(length int) string {
	if length <= 0 {
		return ""
	}
	return g.f.DigitN(uint(length))
}

const alnumChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (g *Faker) Alphanumeric(length int) string {
	if length <= 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alnumChars[g.f.Number(0, len(alnumChars)-1)]
	}
	return string(out)
}

func (g *Faker) UpperLetter() string {
	return string(rune('A' + g.f.Number(0, 25)))
}

func (g *Faker) Digit() string {
	return string(rune('0' + g.f.Number(0, 9)))
}

// PastDate draws a date from the last five years.
func (g *Faker) PastDate() time.Time {
	now := time.Now()
	return g.f.DateRange(now.AddDate(-5, 0, 0), now)
}
