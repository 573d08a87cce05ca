package dferr

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure. Validation kinds are raised before any
// record is generated; the remaining kinds abort a run mid-loop.
type Kind int

const (
	KindUnknown Kind = iota
	KindUniquenessExhausted
	KindInvalidFieldConfig
	KindCountExceeded
	KindNoFieldsSelected
	KindEngineFailure
	KindInvalidDemographics
	KindInvalidAgeRange
	KindInvalidLocation
)

type meta struct {
	code       string
	severity   string
	message    string
	userMsg    string
	resolution string
}

// Stable error codes carried over from the product's diagnostics catalog.
var catalog = map[Kind]meta{
	KindUniquenessExhausted: {
		code:       "DF-GEN-001",
		severity:   "MEDIUM",
		message:    "failed to generate unique value after maximum attempts",
		userMsg:    "Unable to generate enough unique values for this field. Try reducing the number of records or removing the uniqueness constraint.",
		resolution: "Reduce record count, remove unique constraint, or use a different field type",
	},
	KindInvalidFieldConfig: {
		code:       "DF-GEN-002",
		severity:   "HIGH",
		message:    "invalid field configuration",
		userMsg:    "One or more fields are configured incorrectly. Please check your field settings.",
		resolution: "Review field configuration and ensure all required parameters are valid",
	},
	KindCountExceeded: {
		code:       "DF-GEN-003",
		severity:   "HIGH",
		message:    "record count outside allowed range",
		userMsg:    "You can generate between 1 and 10,000 records at a time.",
		resolution: "Set the record count between 1 and 10,000",
	},
	KindNoFieldsSelected: {
		code:       "DF-GEN-004",
		severity:   "HIGH",
		message:    "no fields selected for generation",
		userMsg:    "Please select at least one field to generate data.",
		resolution: "Select one or more fields from the available options",
	},
	KindEngineFailure: {
		code:       "DF-GEN-005",
		severity:   "CRITICAL",
		message:    "data generation engine failure",
		userMsg:    "Unable to complete data generation.",
		resolution: "Check the generation config; if the problem persists, report the wrapped cause",
	},
	KindInvalidDemographics: {
		code:       "DF-GEN-006",
		severity:   "MEDIUM",
		message:    "invalid demographics configuration",
		userMsg:    "Gender percentages must add up to 100%. Please adjust your settings.",
		resolution: "Ensure male + female percentages equal 100%",
	},
	KindInvalidAgeRange: {
		code:       "DF-GEN-007",
		severity:   "MEDIUM",
		message:    "invalid age range configuration",
		userMsg:    "Age range is invalid. Minimum age must be less than maximum age.",
		resolution: "Set a valid age range (e.g., min: 18, max: 65)",
	},
	KindInvalidLocation: {
		code:       "DF-GEN-008",
		severity:   "MEDIUM",
		message:    "invalid location configuration",
		userMsg:    "The location settings are incomplete for the selected mode.",
		resolution: "Provide at least one country for 'specific' mode or a country for 'single' mode",
	},
	KindUnknown: {
		code:       "DF-SYS-001",
		severity:   "HIGH",
		message:    "unclassified error",
		userMsg:    "An unexpected error occurred.",
		resolution: "Check the wrapped cause",
	},
}

// Error is a classified engine error. Detail adds call-site context to the
// catalog message; Context carries structured diagnostics for callers.
type Error struct {
	Kind    Kind
	Detail  string
	Context map[string]any
	cause   error
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Detail: cause.Error(), cause: cause}
}

func (e *Error) With(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func (e *Error) Error() string {
	m := e.metadata()
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", m.code, m.message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", m.code, m.message)
}

func (e *Error) Unwrap() error { return e.cause }

// Code returns the stable diagnostic code, e.g. "DF-GEN-003".
func (e *Error) Code() string { return e.metadata().code }

// Severity returns the catalog severity: LOW, MEDIUM, HIGH or CRITICAL.
func (e *Error) Severity() string { return e.metadata().severity }

// UserMessage is the presentation-layer message for this error.
func (e *Error) UserMessage() string { return e.metadata().userMsg }

// Resolution is the suggested fix shown alongside UserMessage.
func (e *Error) Resolution() string { return e.metadata().resolution }

func (e *Error) metadata() meta {
	if m, ok := catalog[e.Kind]; ok {
		return m
	}
	return catalog[KindUnknown]
}

// KindOf reports the kind of err, or KindUnknown when err is not a classified
// engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a classified engine error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsValidation reports whether err was raised before any generation work
// started, meaning no partial output could exist.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindCountExceeded, KindNoFieldsSelected, KindInvalidDemographics,
		KindInvalidAgeRange, KindInvalidLocation, KindInvalidFieldConfig:
		return true
	}
	return false
}
