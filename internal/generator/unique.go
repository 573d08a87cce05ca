package generator

import (
	"fmt"

	"github.com/dummyforge/dummyforge/internal/dferr"
	"github.com/dummyforge/dummyforge/internal/schema"
)

// maxUniqueAttempts bounds regeneration when a candidate value collides.
const maxUniqueAttempts = 100

// Types exempt from uniqueness enforcement: booleans cannot satisfy it
// beyond two records, and the time-derived types vary naturally (or, for
// unixTimestamp, are made distinct by the record-index offset).
var uniqueExempt = map[schema.FieldType]struct{}{
	schema.FieldBoolean:       {},
	schema.FieldCreatedAt:     {},
	schema.FieldUpdatedAt:     {},
	schema.FieldRegistration:  {},
	schema.FieldUnixTimestamp: {},
	schema.FieldISODate:       {},
}

func uniquenessApplies(t schema.FieldType) bool {
	_, exempt := uniqueExempt[t]
	return !exempt
}

// uniqueTracker records the values already emitted per field and retries
// collisions. Exhaustion is a hard error; the tracker never mutates a value
// to force uniqueness.
type uniqueTracker struct {
	seen map[string]map[string]struct{}
}

func newUniqueTracker() *uniqueTracker {
	return &uniqueTracker{seen: make(map[string]map[string]struct{})}
}

// ensure returns candidate if it is fresh for the field, otherwise calls
// regenerate until a fresh value appears or the retry ceiling is hit.
func (t *uniqueTracker) ensure(field schema.FieldConfig, candidate any, regenerate func() any) (any, error) {
	set, ok := t.seen[field.Name]
	if !ok {
		set = make(map[string]struct{})
		t.seen[field.Name] = set
	}

	value := candidate
	key := fmt.Sprint(value)
	attempts := 0
	for {
		if _, taken := set[key]; !taken {
			set[key] = struct{}{}
			return value, nil
		}
		if attempts >= maxUniqueAttempts {
			return nil, dferr.Newf(dferr.KindUniquenessExhausted, "field %q", field.Name).
				With("fieldName", field.Name).
				With("fieldType", string(field.Type))
		}
		value = regenerate()
		key = fmt.Sprint(value)
		attempts++
	}
}
