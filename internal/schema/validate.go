package schema

import (
	"regexp"

	"github.com/dummyforge/dummyforge/internal/dferr"
)

// validFieldName matches SQL-safe identifiers: a letter followed by letters,
// digits or underscores. Shared shape with table/column validation on the
// seeding path.
var validFieldName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// Validate checks a generation request eagerly, before any record is
// produced. The first violation found is returned as a classified error.
func Validate(cfg *GenerationConfig) error {
	if cfg == nil {
		return dferr.New(dferr.KindNoFieldsSelected, "missing generation config")
	}

	if cfg.Count < 1 || cfg.Count > MaxRecordCount {
		return dferr.Newf(dferr.KindCountExceeded, "requested %d records, allowed range is 1-%d", cfg.Count, MaxRecordCount).
			With("requestedCount", cfg.Count).
			With("maxAllowed", MaxRecordCount)
	}

	if len(cfg.Fields) == 0 {
		return dferr.New(dferr.KindNoFieldsSelected, "")
	}

	seen := make(map[string]struct{}, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if !validFieldName.MatchString(f.Name) {
			return dferr.Newf(dferr.KindInvalidFieldConfig, "field name %q must start with a letter and contain only letters, digits and underscores", f.Name).
				With("fieldName", f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return dferr.Newf(dferr.KindInvalidFieldConfig, "duplicate field name %q", f.Name).
				With("fieldName", f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	d := cfg.Demographics
	if total := d.MalePercentage + d.FemalePercentage; total != 100 {
		return dferr.Newf(dferr.KindInvalidDemographics, "male %d%% + female %d%% = %d%%", d.MalePercentage, d.FemalePercentage, total).
			With("malePercentage", d.MalePercentage).
			With("femalePercentage", d.FemalePercentage).
			With("total", total)
	}

	if d.AgeConfig.Mode == AgeBetween && d.AgeConfig.Min >= d.AgeConfig.Max {
		return dferr.Newf(dferr.KindInvalidAgeRange, "invalid range: %d - %d", d.AgeConfig.Min, d.AgeConfig.Max).
			With("min", d.AgeConfig.Min).
			With("max", d.AgeConfig.Max)
	}

	// Incomplete location config is rejected outright rather than silently
	// falling back to a default country.
	switch cfg.Location.Mode {
	case LocationSpecific:
		if len(cfg.Location.Countries) == 0 {
			return dferr.New(dferr.KindInvalidLocation, "'specific' mode requires at least one country")
		}
	case LocationSingle:
		if cfg.Location.SingleCountry == "" {
			return dferr.New(dferr.KindInvalidLocation, "'single' mode requires a country")
		}
	}

	return nil
}
