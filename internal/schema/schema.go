package schema

// MaxRecordCount bounds a single generation run.
const MaxRecordCount = 10000

// Gender categories assigned per record. The engine only biases generated
// names for Male and Female; the remaining categories are unbiased.
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderOther     Gender = "other"
	GenderNonBinary Gender = "non-binary"
)

// GenderFallback is the ordered category set cycled through for records that
// fall outside the male/female percentage allocation.
var GenderFallback = []Gender{GenderMale, GenderFemale, GenderOther, GenderNonBinary}

// FieldType is the closed set of supported column kinds.
type FieldType string

const (
	FieldFirstName     FieldType = "firstName"
	FieldLastName      FieldType = "lastName"
	FieldFullName      FieldType = "fullName"
	FieldGender        FieldType = "gender"
	FieldAge           FieldType = "age"
	FieldDateOfBirth   FieldType = "dateOfBirth"
	FieldEmail         FieldType = "email"
	FieldPhone         FieldType = "phone"
	FieldMobilePhone   FieldType = "mobilePhone"
	FieldLandline      FieldType = "landline"
	FieldCountry       FieldType = "country"
	FieldCity          FieldType = "city"
	FieldState         FieldType = "state"
	FieldAddress       FieldType = "address"
	FieldStreetAddress FieldType = "streetAddress"
	FieldPostalCode    FieldType = "postalCode"
	FieldLatitude      FieldType = "latitude"
	FieldLongitude     FieldType = "longitude"
	FieldStudentID     FieldType = "studentID"
	FieldEmployeeID    FieldType = "employeeID"
	FieldUUID          FieldType = "uuid"
	FieldUsername      FieldType = "username"
	FieldCreatedAt     FieldType = "createdAt"
	FieldUpdatedAt     FieldType = "updatedAt"
	FieldRegistration  FieldType = "registrationDate"
	FieldCreditCard    FieldType = "creditCard"
	FieldIBAN          FieldType = "iban"
	FieldCurrency      FieldType = "currency"
	FieldRandomString  FieldType = "randomString"
	FieldRandomNumeric FieldType = "randomNumeric"
	FieldRandomAlnum   FieldType = "randomAlphanumeric"
	FieldAutoIncrement FieldType = "autoIncrement"
	FieldAutoIncCustom FieldType = "autoIncrementCustom"
	FieldUnixTimestamp FieldType = "unixTimestamp"
	FieldISODate       FieldType = "isoDate"
	FieldBoolean       FieldType = "boolean"
	FieldCustomPattern FieldType = "customPattern"
)

// AllFieldTypes lists every supported field type in catalog order.
var AllFieldTypes = []FieldType{
	FieldFirstName, FieldLastName, FieldFullName, FieldGender, FieldAge,
	FieldDateOfBirth, FieldEmail, FieldPhone, FieldMobilePhone, FieldLandline,
	FieldCountry, FieldCity, FieldState, FieldAddress, FieldStreetAddress,
	FieldPostalCode, FieldLatitude, FieldLongitude, FieldStudentID,
	FieldEmployeeID, FieldUUID, FieldUsername, FieldCreatedAt, FieldUpdatedAt,
	FieldRegistration, FieldCreditCard, FieldIBAN, FieldCurrency,
	FieldRandomString, FieldRandomNumeric, FieldRandomAlnum,
	FieldAutoIncrement, FieldAutoIncCustom, FieldUnixTimestamp, FieldISODate,
	FieldBoolean, FieldCustomPattern,
}

// AgeMode selects how ages are drawn.
type AgeMode string

const (
	AgeBetween AgeMode = "between"
	AgeUnder   AgeMode = "under"
	AgeAbove   AgeMode = "above"
	AgeExact   AgeMode = "exact"
)

// AgeConfig is a tagged variant: Min/Max/Value are read according to Mode.
type AgeConfig struct {
	Mode  AgeMode `json:"mode" yaml:"mode"`
	Min   int     `json:"min,omitempty" yaml:"min,omitempty"`
	Max   int     `json:"max,omitempty" yaml:"max,omitempty"`
	Value int     `json:"value,omitempty" yaml:"value,omitempty"`
}

// Demographics governs the gender split and age distribution. Male and
// female percentages must sum to exactly 100; the other/non-binary share is
// produced structurally by the per-index assignment cycle.
type Demographics struct {
	MalePercentage   int       `json:"malePercentage" yaml:"malePercentage"`
	FemalePercentage int       `json:"femalePercentage" yaml:"femalePercentage"`
	AgeConfig        AgeConfig `json:"ageConfig" yaml:"ageConfig"`
}

// LocationMode selects how each record's country code is chosen.
type LocationMode string

const (
	LocationRandom   LocationMode = "random"
	LocationSpecific LocationMode = "specific"
	LocationSingle   LocationMode = "single"
)

type LocationConfig struct {
	Mode          LocationMode `json:"mode" yaml:"mode"`
	Countries     []string     `json:"countries,omitempty" yaml:"countries,omitempty"`
	SingleCountry string       `json:"singleCountry,omitempty" yaml:"singleCountry,omitempty"`
}

// FieldOptions carries the type-specific knobs. Pointer fields distinguish
// "unset" from an explicit zero so defaults can be applied downstream.
type FieldOptions struct {
	LengthMin *int   `json:"lengthMin,omitempty" yaml:"lengthMin,omitempty"`
	LengthMax *int   `json:"lengthMax,omitempty" yaml:"lengthMax,omitempty"`
	Start     *int   `json:"start,omitempty" yaml:"start,omitempty"`
	Step      *int   `json:"step,omitempty" yaml:"step,omitempty"`
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix    string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// BooleanTruePercentage is clamped to [0,100]; nil means 50.
	BooleanTruePercentage *int `json:"booleanTruePercentage,omitempty" yaml:"booleanTruePercentage,omitempty"`
}

// FieldConfig describes one output column.
type FieldConfig struct {
	Name    string        `json:"name" yaml:"name"`
	Type    FieldType     `json:"type" yaml:"type"`
	Unique  bool          `json:"unique,omitempty" yaml:"unique,omitempty"`
	Options *FieldOptions `json:"config,omitempty" yaml:"config,omitempty"`
}

// GenerationConfig is the full generation request. Field order determines
// record key order.
type GenerationConfig struct {
	Fields       []FieldConfig  `json:"fields" yaml:"fields"`
	Count        int            `json:"count" yaml:"count"`
	Demographics Demographics   `json:"demographics" yaml:"demographics"`
	Location     LocationConfig `json:"location" yaml:"location"`
}

// FieldNames returns configured field names in order.
func (c *GenerationConfig) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}
