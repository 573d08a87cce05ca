// Package generator implements the record generation engine: it interprets
// a generation config and produces an in-memory list of records, enforcing
// per-field uniqueness, auto-increment sequencing and cross-field
// consistency between a record's gender, locale, names and phone number.
package generator

import (
	"fmt"

	"github.com/dummyforge/dummyforge/internal/countries"
	"github.com/dummyforge/dummyforge/internal/dferr"
	"github.com/dummyforge/dummyforge/internal/schema"
)

// Engine generates record sets. It holds no session state of its own, so an
// Engine value is safe to reuse across sequential Generate calls; concurrent
// calls need either separate engines or external serialization, since the
// Provider implementations are not synchronized.
type Engine struct {
	provider Provider
}

func New(provider Provider) *Engine {
	return &Engine{provider: provider}
}

// NewDefault returns an engine backed by the production faker.
func NewDefault() *Engine {
	return New(NewFaker())
}

// session is the state scoped to one Generate call: uniqueness sets,
// auto-increment counters and the request's demographic/location policy.
// Every call starts from a clean slate.
type session struct {
	p        Provider
	age      schema.AgeConfig
	location schema.LocationConfig
	counters *counterSet
	unique   *uniqueTracker
}

// Generate validates cfg and produces exactly cfg.Count records, or fails
// atomically: no partial record list is ever returned.
func (e *Engine) Generate(cfg *schema.GenerationConfig) (records []*schema.Record, err error) {
	if err := schema.Validate(cfg); err != nil {
		return nil, err
	}

	s := &session{
		p:        e.provider,
		age:      cfg.Demographics.AgeConfig,
		location: cfg.Location,
		counters: newCounterSet(),
		unique:   newUniqueTracker(),
	}

	// A provider or dispatch panic surfaces as a classified engine failure
	// instead of crossing the API boundary.
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = dferr.Wrap(dferr.KindEngineFailure, fmt.Errorf("generation panic: %v", r))
		}
	}()

	records = make([]*schema.Record, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		rc := &recordContext{
			index:   i,
			gender:  determineGender(i, cfg.Demographics.MalePercentage, cfg.Demographics.FemalePercentage),
			country: s.countryCode(),
		}

		record := schema.NewRecord()
		for _, field := range cfg.Fields {
			value := s.recordValue(field, rc)

			if field.Unique && uniquenessApplies(field.Type) {
				field := field
				value, err = s.unique.ensure(field, value, func() any {
					return s.rawValue(field, rc)
				})
				if err != nil {
					return nil, err
				}
			}

			record.Set(field.Name, value)
		}
		records = append(records, record)
	}

	return records, nil
}

// recordValue produces the value stored in the record. Name fields go
// through the per-record cache so firstName, lastName and fullName agree
// within one record; everything else dispatches directly.
func (s *session) recordValue(field schema.FieldConfig, rc *recordContext) any {
	switch field.Type {
	case schema.FieldFirstName:
		return rc.first(s.p)
	case schema.FieldLastName:
		return rc.last(s.p)
	case schema.FieldFullName:
		return rc.first(s.p) + " " + rc.last(s.p)
	default:
		return s.rawValue(field, rc)
	}
}

// rawValue dispatches to the field's generator, bypassing the name cache so
// uniqueness retries can draw fresh values. Unknown field types degrade to
// an empty value rather than failing the run.
func (s *session) rawValue(field schema.FieldConfig, rc *recordContext) any {
	gen, ok := generators[field.Type]
	if !ok {
		return ""
	}
	return gen(s, field, rc)
}

// countryCode applies the location policy for one record. Validation has
// already rejected empty country lists and missing single countries. Random
// mode draws from the country table so the code always has a display name
// and phone rule.
func (s *session) countryCode() string {
	switch s.location.Mode {
	case schema.LocationSingle:
		return s.location.SingleCountry
	case schema.LocationSpecific:
		return s.location.Countries[s.p.IntBetween(0, len(s.location.Countries)-1)]
	default:
		codes := countries.Codes()
		return codes[s.p.IntBetween(0, len(codes)-1)]
	}
}
