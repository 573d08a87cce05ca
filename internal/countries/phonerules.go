package countries

// PhoneRule describes the shape of a national phone number: the country's
// dial code and the inclusive range of national-number digit counts.
type PhoneRule struct {
	DialCode  string
	MinLength int
	MaxLength int
}

var phoneRules = map[string]PhoneRule{
	"US": {DialCode: "1", MinLength: 10, MaxLength: 10},
	"CA": {DialCode: "1", MinLength: 10, MaxLength: 10},
	"GB": {DialCode: "44", MinLength: 10, MaxLength: 10},
	"AU": {DialCode: "61", MinLength: 9, MaxLength: 9},
	"DE": {DialCode: "49", MinLength: 10, MaxLength: 11},
	"FR": {DialCode: "33", MinLength: 9, MaxLength: 9},
	"IT": {DialCode: "39", MinLength: 9, MaxLength: 10},
	"ES": {DialCode: "34", MinLength: 9, MaxLength: 9},
	"MX": {DialCode: "52", MinLength: 10, MaxLength: 10},
	"BR": {DialCode: "55", MinLength: 10, MaxLength: 11},
	"JP": {DialCode: "81", MinLength: 10, MaxLength: 10},
	"IN": {DialCode: "91", MinLength: 10, MaxLength: 10},
	"CN": {DialCode: "86", MinLength: 11, MaxLength: 11},
	"KR": {DialCode: "82", MinLength: 9, MaxLength: 10},
	"NL": {DialCode: "31", MinLength: 9, MaxLength: 9},
	"SE": {DialCode: "46", MinLength: 9, MaxLength: 9},
	"NO": {DialCode: "47", MinLength: 8, MaxLength: 8},
	"FI": {DialCode: "358", MinLength: 9, MaxLength: 10},
	"DK": {DialCode: "45", MinLength: 8, MaxLength: 8},
	"PL": {DialCode: "48", MinLength: 9, MaxLength: 9},
	"ZA": {DialCode: "27", MinLength: 9, MaxLength: 9},
	"NZ": {DialCode: "64", MinLength: 8, MaxLength: 9},
	"CH": {DialCode: "41", MinLength: 9, MaxLength: 9},
	"AT": {DialCode: "43", MinLength: 10, MaxLength: 11},
	"BE": {DialCode: "32", MinLength: 9, MaxLength: 9},
}

// Secondary calling-code lookup for countries without a full phone rule.
var dialCodes = map[string]string{
	"IE": "353", "PT": "351", "GR": "30", "CZ": "420", "HU": "36",
	"RO": "40", "TR": "90", "RU": "7", "UA": "380", "IL": "972",
	"AE": "971", "SA": "966", "EG": "20", "NG": "234", "KE": "254",
	"AR": "54", "CL": "56", "CO": "57", "PE": "51", "TH": "66",
	"VN": "84", "ID": "62", "MY": "60", "SG": "65", "PH": "63",
	"HK": "852", "TW": "886",
}

// RuleFor returns the phone rule for a country code.
func RuleFor(code string) (PhoneRule, bool) {
	r, ok := phoneRules[code]
	return r, ok
}

// DialCode attempts a generic calling-code lookup, checking the full rule
// table first and the secondary dial-code table after.
func DialCode(code string) (string, bool) {
	if r, ok := phoneRules[code]; ok {
		return r.DialCode, true
	}
	d, ok := dialCodes[code]
	return d, ok
}
