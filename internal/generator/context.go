package generator

import "github.com/dummyforge/dummyforge/internal/schema"

// recordContext is the per-record derivation: index, assigned gender and
// country code, plus memoized first/last names so firstName, lastName and
// fullName stay consistent within one record. It lives for exactly one
// record and is never shared across records.
type recordContext struct {
	index   int
	gender  schema.Gender
	country string

	firstName string
	lastName  string
}

func (rc *recordContext) first(p Provider) string {
	if rc.firstName == "" {
		rc.firstName = p.FirstName(rc.gender)
	}
	return rc.firstName
}

func (rc *recordContext) last(p Provider) string {
	if rc.lastName == "" {
		rc.lastName = p.LastName()
	}
	return rc.lastName
}

// determineGender assigns a gender category as a pure function of the record
// index. The roll cycles 0,7,14,...,93 over indices; rolls below the male
// share are male, rolls below male+female are female, and the remainder
// cycles deterministically through the fallback categories.
func determineGender(index, malePercentage, femalePercentage int) schema.Gender {
	roll := (index * 7) % 100
	if roll < malePercentage {
		return schema.GenderMale
	}
	if roll < malePercentage+femalePercentage {
		return schema.GenderFemale
	}
	return schema.GenderFallback[(index+3)%len(schema.GenderFallback)]
}
