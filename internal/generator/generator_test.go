package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dummyforge/dummyforge/internal/countries"
	"github.com/dummyforge/dummyforge/internal/dferr"
	"github.com/dummyforge/dummyforge/internal/schema"
)

func intp(v int) *int { return &v }

func testEngine() *Engine {
	return New(NewSeededFaker(42))
}

// baseConfig returns a valid single-country request for the given fields.
func baseConfig(count int, fields ...schema.FieldConfig) *schema.GenerationConfig {
	return &schema.GenerationConfig{
		Fields: fields,
		Count:  count,
		Demographics: schema.Demographics{
			MalePercentage:   50,
			FemalePercentage: 50,
			AgeConfig:        schema.AgeConfig{Mode: schema.AgeExact, Value: 30},
		},
		Location: schema.LocationConfig{Mode: schema.LocationSingle, SingleCountry: "US"},
	}
}

func TestDetermineGenderIsPureFunctionOfIndex(t *testing.T) {
	// roll = (i*7) % 100
	assert.Equal(t, schema.GenderMale, determineGender(0, 50, 50))    // roll 0
	assert.Equal(t, schema.GenderMale, determineGender(15, 50, 50))   // roll 5
	assert.Equal(t, schema.GenderMale, determineGender(20, 50, 50))   // roll 40
	assert.Equal(t, schema.GenderFemale, determineGender(8, 50, 50))  // roll 56
	assert.Equal(t, schema.GenderFemale, determineGender(13, 50, 50)) // roll 91

	// Repeated calls never diverge.
	for i := 0; i < 200; i++ {
		first := determineGender(i, 30, 70)
		second := determineGender(i, 30, 70)
		assert.Equal(t, first, second, "index %d", i)
	}
}

func TestDetermineGenderFallbackCycle(t *testing.T) {
	// With male+female < 100 some rolls land past the allocation and cycle
	// through {male,female,other,non-binary}[(i+3)%4].
	for i := 0; i < 100; i++ {
		got := determineGender(i, 10, 10)
		roll := (i * 7) % 100
		if roll < 10 {
			assert.Equal(t, schema.GenderMale, got, "index %d", i)
		} else if roll < 20 {
			assert.Equal(t, schema.GenderFemale, got, "index %d", i)
		} else {
			assert.Equal(t, schema.GenderFallback[(i+3)%4], got, "index %d", i)
		}
	}
}

func TestGenerateCountBounds(t *testing.T) {
	field := schema.FieldConfig{Name: "id", Type: schema.FieldAutoIncrement}

	_, err := testEngine().Generate(baseConfig(0, field))
	assert.True(t, dferr.IsKind(err, dferr.KindCountExceeded), "count=0: %v", err)

	_, err = testEngine().Generate(baseConfig(10001, field))
	assert.True(t, dferr.IsKind(err, dferr.KindCountExceeded), "count=10001: %v", err)

	records, err := testEngine().Generate(baseConfig(1, field))
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = testEngine().Generate(baseConfig(schema.MaxRecordCount, field))
	require.NoError(t, err)
	assert.Len(t, records, schema.MaxRecordCount)
}

func TestGenerateRejectsInvalidDemographics(t *testing.T) {
	cfg := baseConfig(5, schema.FieldConfig{Name: "id", Type: schema.FieldAutoIncrement})
	cfg.Demographics.MalePercentage = 60
	cfg.Demographics.FemalePercentage = 60

	_, err := testEngine().Generate(cfg)
	assert.True(t, dferr.IsKind(err, dferr.KindInvalidDemographics), "got %v", err)
}

func TestUniquenessAcrossRecords(t *testing.T) {
	// 36^2 = 1296 possible values, 50 records must succeed.
	cfg := baseConfig(50, schema.FieldConfig{
		Name:    "code",
		Type:    schema.FieldRandomAlnum,
		Unique:  true,
		Options: &schema.FieldOptions{LengthMin: intp(2), LengthMax: intp(2)},
	})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	seen := make(map[any]struct{})
	for _, r := range records {
		v := r.Value("code")
		_, dup := seen[v]
		assert.False(t, dup, "duplicate value %v", v)
		seen[v] = struct{}{}
	}
}

func TestUniquenessExhaustion(t *testing.T) {
	// A single-digit pattern has only 10 possible values; 11 unique records
	// cannot exist.
	cfg := baseConfig(11, schema.FieldConfig{
		Name:    "digit",
		Type:    schema.FieldCustomPattern,
		Unique:  true,
		Options: &schema.FieldOptions{Pattern: "#"},
	})

	records, err := testEngine().Generate(cfg)
	require.Error(t, err)
	assert.Nil(t, records, "no partial results on failure")
	assert.True(t, dferr.IsKind(err, dferr.KindUniquenessExhausted), "got %v", err)

	var de *dferr.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "DF-GEN-001", de.Code())
	assert.Equal(t, "digit", de.Context["fieldName"])
	assert.Equal(t, "customPattern", de.Context["fieldType"])
}

func TestUniquenessExemptTypes(t *testing.T) {
	// Booleans and time-derived fields skip uniqueness enforcement even when
	// flagged unique; identical values must not fail the run.
	cfg := baseConfig(10,
		schema.FieldConfig{Name: "active", Type: schema.FieldBoolean, Unique: true},
		schema.FieldConfig{Name: "created_at", Type: schema.FieldCreatedAt, Unique: true},
		schema.FieldConfig{Name: "updated_at", Type: schema.FieldUpdatedAt, Unique: true},
		schema.FieldConfig{Name: "iso", Type: schema.FieldISODate, Unique: true},
	)

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func TestAutoIncrementSequence(t *testing.T) {
	cfg := baseConfig(5, schema.FieldConfig{
		Name:    "id",
		Type:    schema.FieldAutoIncrement,
		Options: &schema.FieldOptions{Start: intp(1000)},
	})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	for i, want := range []int{1000, 1001, 1002, 1003, 1004} {
		assert.Equal(t, want, records[i].Value("id"))
	}
}

func TestAutoIncrementCustomStep(t *testing.T) {
	cfg := baseConfig(5, schema.FieldConfig{
		Name:    "seq",
		Type:    schema.FieldAutoIncCustom,
		Options: &schema.FieldOptions{Start: intp(5), Step: intp(3)},
	})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	for i, want := range []int{5, 8, 11, 14, 17} {
		assert.Equal(t, want, records[i].Value("seq"))
	}
}

func TestStudentAndEmployeeIDs(t *testing.T) {
	cfg := baseConfig(3,
		schema.FieldConfig{Name: "student", Type: schema.FieldStudentID},
		schema.FieldConfig{Name: "employee", Type: schema.FieldEmployeeID},
	)

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, "STU-1000", records[0].Value("student"))
	assert.Equal(t, "STU-1001", records[1].Value("student"))
	assert.Equal(t, "STU-1002", records[2].Value("student"))
	assert.Equal(t, "EMP-5000", records[0].Value("employee"))
	assert.Equal(t, "EMP-5002", records[2].Value("employee"))
}

func TestCountersResetBetweenCalls(t *testing.T) {
	cfg := baseConfig(2, schema.FieldConfig{Name: "id", Type: schema.FieldAutoIncrement})
	engine := testEngine()

	first, err := engine.Generate(cfg)
	require.NoError(t, err)
	second, err := engine.Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, first[0].Value("id"))
	assert.Equal(t, 1, second[0].Value("id"), "session state must not leak across calls")
}

func TestCustomPatternExpansion(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)
	cfg := baseConfig(100, schema.FieldConfig{
		Name:    "sku",
		Type:    schema.FieldCustomPattern,
		Options: &schema.FieldOptions{Pattern: "XXX-###"},
	})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	for _, r := range records {
		v := r.Value("sku").(string)
		assert.Regexp(t, re, v)
	}
}

func TestCustomPatternDefault(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}-[A-Z]{3}$`)
	cfg := baseConfig(10, schema.FieldConfig{Name: "code", Type: schema.FieldCustomPattern})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		assert.Regexp(t, re, r.Value("code").(string))
	}
}

func TestAgeBetweenRange(t *testing.T) {
	cfg := baseConfig(120, schema.FieldConfig{Name: "age", Type: schema.FieldAge})
	cfg.Demographics.AgeConfig = schema.AgeConfig{Mode: schema.AgeBetween, Min: 18, Max: 65}

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	for _, r := range records {
		age := r.Value("age").(int)
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 65)
	}
}

func TestAgeModes(t *testing.T) {
	e := testEngine()

	under := baseConfig(50, schema.FieldConfig{Name: "age", Type: schema.FieldAge})
	under.Demographics.AgeConfig = schema.AgeConfig{Mode: schema.AgeUnder, Max: 18}
	records, err := e.Generate(under)
	require.NoError(t, err)
	for _, r := range records {
		age := r.Value("age").(int)
		assert.GreaterOrEqual(t, age, 1)
		assert.LessOrEqual(t, age, 18)
	}

	above := baseConfig(50, schema.FieldConfig{Name: "age", Type: schema.FieldAge})
	above.Demographics.AgeConfig = schema.AgeConfig{Mode: schema.AgeAbove, Min: 65}
	records, err = e.Generate(above)
	require.NoError(t, err)
	for _, r := range records {
		age := r.Value("age").(int)
		assert.GreaterOrEqual(t, age, 66)
		assert.LessOrEqual(t, age, 115)
	}

	exact := baseConfig(10, schema.FieldConfig{Name: "age", Type: schema.FieldAge})
	records, err = e.Generate(exact)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, 30, r.Value("age"))
	}
}

func TestRecordFieldOrder(t *testing.T) {
	cfg := baseConfig(3,
		schema.FieldConfig{Name: "zeta", Type: schema.FieldUUID},
		schema.FieldConfig{Name: "alpha", Type: schema.FieldCity},
		schema.FieldConfig{Name: "mid", Type: schema.FieldAge},
	)

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	for _, r := range records {
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys())
	}
}

func TestNameConsistencyWithinRecord(t *testing.T) {
	cfg := baseConfig(25,
		schema.FieldConfig{Name: "first", Type: schema.FieldFirstName},
		schema.FieldConfig{Name: "last", Type: schema.FieldLastName},
		schema.FieldConfig{Name: "full", Type: schema.FieldFullName},
	)

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)

	for _, r := range records {
		first := r.Value("first").(string)
		last := r.Value("last").(string)
		assert.Equal(t, first+" "+last, r.Value("full"))
	}
}

func TestGenderFieldPassThrough(t *testing.T) {
	cfg := baseConfig(20, schema.FieldConfig{Name: "gender", Type: schema.FieldGender})
	cfg.Demographics.MalePercentage = 100
	cfg.Demographics.FemalePercentage = 0

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, "male", r.Value("gender"))
	}
}

func TestBooleanTruePercentage(t *testing.T) {
	always := baseConfig(30, schema.FieldConfig{
		Name:    "flag",
		Type:    schema.FieldBoolean,
		Options: &schema.FieldOptions{BooleanTruePercentage: intp(100)},
	})
	records, err := testEngine().Generate(always)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, true, r.Value("flag"))
	}

	never := baseConfig(30, schema.FieldConfig{
		Name:    "flag",
		Type:    schema.FieldBoolean,
		Options: &schema.FieldOptions{BooleanTruePercentage: intp(0)},
	})
	records, err = testEngine().Generate(never)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, false, r.Value("flag"))
	}
}

func TestRandomStringOptions(t *testing.T) {
	cfg := baseConfig(40, schema.FieldConfig{
		Name: "token",
		Type: schema.FieldRandomNumeric,
		Options: &schema.FieldOptions{
			LengthMin: intp(4),
			LengthMax: intp(6),
			Prefix:    "N-",
			Suffix:    "-X",
		},
	})

	re := regexp.MustCompile(`^N-[0-9]{4,6}-X$`)
	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		assert.Regexp(t, re, r.Value("token").(string))
	}
}

func TestEmailShape(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+\.[a-z]+\.[0-9]{1,4}@`)
	cfg := baseConfig(20, schema.FieldConfig{Name: "email", Type: schema.FieldEmail})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		email := r.Value("email").(string)
		assert.Regexp(t, re, email)
		assert.Equal(t, strings.ToLower(email), email)
	}
}

func TestPhoneUsesCountryRule(t *testing.T) {
	cfg := baseConfig(20, schema.FieldConfig{Name: "phone", Type: schema.FieldPhone})
	cfg.Location = schema.LocationConfig{Mode: schema.LocationSingle, SingleCountry: "DK"}

	// DK: dial code 45, national number exactly 8 digits.
	re := regexp.MustCompile(`^\+45 [0-9]{8}$`)
	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		assert.Regexp(t, re, r.Value("phone").(string))
	}
}

func TestCountryResolvesDisplayName(t *testing.T) {
	cfg := baseConfig(5, schema.FieldConfig{Name: "country", Type: schema.FieldCountry})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, "United States", r.Value("country"))
	}
}

func TestSpecificLocationStaysInSet(t *testing.T) {
	cfg := baseConfig(60, schema.FieldConfig{Name: "country", Type: schema.FieldCountry})
	cfg.Location = schema.LocationConfig{Mode: schema.LocationSpecific, Countries: []string{"DE", "FR"}}

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		assert.Contains(t, []any{"Germany", "France"}, r.Value("country"))
	}
}

func TestRandomLocationStaysInCountryTable(t *testing.T) {
	cfg := baseConfig(60, schema.FieldConfig{Name: "country", Type: schema.FieldCountry})
	cfg.Location = schema.LocationConfig{Mode: schema.LocationRandom}

	names := make(map[any]struct{})
	for _, code := range countries.Codes() {
		names[countries.Name(code)] = struct{}{}
	}

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		_, ok := names[r.Value("country")]
		assert.True(t, ok, "country %v not in the known table", r.Value("country"))
	}
}

func TestUnknownFieldTypeDegrades(t *testing.T) {
	cfg := baseConfig(3, schema.FieldConfig{Name: "future", Type: schema.FieldType("holographicID")})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, "", r.Value("future"))
	}
}

func TestUnixTimestampMonotonicPerIndex(t *testing.T) {
	cfg := baseConfig(10, schema.FieldConfig{Name: "ts", Type: schema.FieldUnixTimestamp})

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	for i := 1; i < len(records); i++ {
		prev := records[i-1].Value("ts").(int64)
		cur := records[i].Value("ts").(int64)
		assert.Greater(t, cur, prev)
	}
}

func TestGeneratorRegistryIsTotal(t *testing.T) {
	for _, t2 := range schema.AllFieldTypes {
		_, ok := generators[t2]
		assert.True(t, ok, "missing generator for field type %q", t2)
	}
	assert.Len(t, generators, len(schema.AllFieldTypes))
}

func TestEndToEndScenario(t *testing.T) {
	cfg := &schema.GenerationConfig{
		Fields: []schema.FieldConfig{
			{Name: "id", Type: schema.FieldAutoIncrement, Unique: true},
			{Name: "email", Type: schema.FieldEmail, Unique: true},
		},
		Count: 3,
		Demographics: schema.Demographics{
			MalePercentage:   100,
			FemalePercentage: 0,
			AgeConfig:        schema.AgeConfig{Mode: schema.AgeExact, Value: 30},
		},
		Location: schema.LocationConfig{Mode: schema.LocationSingle, SingleCountry: "US"},
	}

	records, err := testEngine().Generate(cfg)
	require.NoError(t, err)
	require.Len(t, records, 3)

	emails := make(map[any]struct{})
	for i, r := range records {
		assert.Equal(t, i+1, r.Value("id"))
		emails[r.Value("email")] = struct{}{}
	}
	assert.Len(t, emails, 3)
}
