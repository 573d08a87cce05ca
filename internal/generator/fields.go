package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dummyforge/dummyforge/internal/countries"
	"github.com/dummyforge/dummyforge/internal/schema"
)

// generateFunc produces one raw value for a field given the per-record
// context. Funcs are stateless apart from the session's counters.
type generateFunc func(s *session, f schema.FieldConfig, rc *recordContext) any

// generators is the closed dispatch table. Every schema.FieldType must have
// an entry; the registry test checks it stays total as types are added.
var generators = map[schema.FieldType]generateFunc{
	schema.FieldFirstName: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.FirstName(rc.gender)
	},
	schema.FieldLastName: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.LastName()
	},
	schema.FieldFullName: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.FirstName(rc.gender) + " " + s.p.LastName()
	},
	schema.FieldGender: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return string(rc.gender)
	},
	schema.FieldAge: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.generateAge()
	},
	schema.FieldDateOfBirth: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		age := s.generateAge()
		return time.Now().AddDate(-age, 0, 0).Format("2006-01-02")
	},
	schema.FieldEmail: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		first := strings.ToLower(s.p.FirstName(rc.gender))
		last := strings.ToLower(s.p.LastName())
		return fmt.Sprintf("%s.%s.%d@%s", first, last, s.p.IntBetween(1, 9999), s.p.DomainName())
	},
	schema.FieldPhone:       generatePhone,
	schema.FieldMobilePhone: generatePhone,
	schema.FieldLandline:    generatePhone,
	schema.FieldCountry: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return countries.Name(rc.country)
	},
	schema.FieldCity: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.City()
	},
	schema.FieldState: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.State()
	},
	schema.FieldAddress: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return fmt.Sprintf("%s, %s, %s, %s", s.p.StreetAddress(), s.p.City(), s.p.State(), countries.Name(rc.country))
	},
	schema.FieldStreetAddress: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.StreetAddress()
	},
	schema.FieldPostalCode: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.PostalCode()
	},
	schema.FieldLatitude: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.Latitude()
	},
	schema.FieldLongitude: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.Longitude()
	},
	schema.FieldStudentID: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return fmt.Sprintf("STU-%d", s.counters.next("studentID", 1000, 1))
	},
	schema.FieldEmployeeID: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return fmt.Sprintf("EMP-%d", s.counters.next("employeeID", 5000, 1))
	},
	schema.FieldUUID: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.UUID()
	},
	schema.FieldUsername: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.Username(strings.ToLower(s.p.FirstName(schema.GenderOther)))
	},
	schema.FieldCreatedAt: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return time.Now().UTC().Format(time.RFC3339)
	},
	schema.FieldUpdatedAt: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return time.Now().UTC().Format(time.RFC3339)
	},
	schema.FieldRegistration: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.PastDate().Format("2006-01-02")
	},
	schema.FieldCreditCard: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.CreditCardNumber()
	},
	schema.FieldIBAN: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.IBAN()
	},
	schema.FieldCurrency: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.p.CurrencyCode()
	},
	schema.FieldRandomString: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.randomString(f, s.p.Alpha)
	},
	schema.FieldRandomNumeric: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.randomString(f, s.p.Numeric)
	},
	schema.FieldRandomAlnum: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.randomString(f, s.p.Alphanumeric)
	},
	schema.FieldAutoIncrement: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.counters.next(f.Name, optInt(startOf(f.Options), 1), 1)
	},
	schema.FieldAutoIncCustom: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return s.counters.next(f.Name, optInt(startOf(f.Options), 1), optInt(stepOf(f.Options), 1))
	},
	schema.FieldUnixTimestamp: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		// Offsetting by the record index keeps values distinct within a run.
		return time.Now().Unix() + int64(rc.index)
	},
	schema.FieldISODate: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		return time.Now().Format(time.RFC3339)
	},
	schema.FieldBoolean: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		pct := optInt(truePctOf(f.Options), 50)
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		return s.p.IntBetween(1, 100) <= pct
	},
	schema.FieldCustomPattern: func(s *session, f schema.FieldConfig, rc *recordContext) any {
		pattern := "XXX-####-XXX"
		if f.Options != nil && f.Options.Pattern != "" {
			pattern = f.Options.Pattern
		}
		return s.expandPattern(pattern)
	},
}

func generatePhone(s *session, f schema.FieldConfig, rc *recordContext) any {
	if rule, ok := countries.RuleFor(rc.country); ok {
		length := s.p.IntBetween(rule.MinLength, rule.MaxLength)
		return fmt.Sprintf("+%s %s", rule.DialCode, s.p.Numeric(length))
	}
	if dial, ok := countries.DialCode(rc.country); ok {
		return fmt.Sprintf("+%s %s", dial, s.p.Numeric(s.p.IntBetween(8, 10)))
	}
	return s.p.PhoneNumber()
}

func (s *session) generateAge() int {
	age := s.age
	switch age.Mode {
	case schema.AgeBetween:
		return s.p.IntBetween(age.Min, age.Max)
	case schema.AgeUnder:
		max := age.Max
		if max < 1 {
			max = 1
		}
		return s.p.IntBetween(1, max)
	case schema.AgeAbove:
		return s.p.IntBetween(age.Min+1, age.Min+50)
	case schema.AgeExact:
		return age.Value
	default:
		return s.p.IntBetween(18, 65)
	}
}

func (s *session) randomString(f schema.FieldConfig, draw func(int) string) string {
	min, max := 5, 12
	if f.Options != nil {
		min = optInt(f.Options.LengthMin, min)
		max = optInt(f.Options.LengthMax, max)
	}
	base := draw(s.p.IntBetween(min, max))
	if f.Options == nil {
		return base
	}
	return f.Options.Prefix + base + f.Options.Suffix
}

// expandPattern replaces each X with a random uppercase letter and each #
// with a random digit, independently per occurrence. Other characters pass
// through as literals.
func (s *session) expandPattern(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, ch := range pattern {
		switch ch {
		case 'X':
			b.WriteString(s.p.UpperLetter())
		case '#':
			b.WriteString(s.p.Digit())
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func optInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func startOf(o *schema.FieldOptions) *int {
	if o == nil {
		return nil
	}
	return o.Start
}

func stepOf(o *schema.FieldOptions) *int {
	if o == nil {
		return nil
	}
	return o.Step
}

func truePctOf(o *schema.FieldOptions) *int {
	if o == nil {
		return nil
	}
	return o.BooleanTruePercentage
}
