package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
count: 25
fields:
  - name: id
    type: autoIncrement
    unique: true
    config:
      start: 100
  - name: email
    type: email
    unique: true
demographics:
  malePercentage: 60
  femalePercentage: 40
  ageConfig:
    mode: between
    min: 21
    max: 60
location:
  mode: specific
  countries: [US, CA, GB]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	cfg, err := LoadFile(writeTemp(t, "gen.yaml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Count)
	require.Len(t, cfg.Fields, 2)
	assert.Equal(t, "id", cfg.Fields[0].Name)
	assert.Equal(t, FieldAutoIncrement, cfg.Fields[0].Type)
	require.NotNil(t, cfg.Fields[0].Options)
	require.NotNil(t, cfg.Fields[0].Options.Start)
	assert.Equal(t, 100, *cfg.Fields[0].Options.Start)
	assert.True(t, cfg.Fields[1].Unique)
	assert.Equal(t, 60, cfg.Demographics.MalePercentage)
	assert.Equal(t, AgeBetween, cfg.Demographics.AgeConfig.Mode)
	assert.Equal(t, LocationSpecific, cfg.Location.Mode)
	assert.Equal(t, []string{"US", "CA", "GB"}, cfg.Location.Countries)
}

func TestLoadFileJSON(t *testing.T) {
	jsonConfig := `{
  "count": 3,
  "fields": [{"name": "code", "type": "customPattern", "config": {"pattern": "XX-##"}}],
  "demographics": {"malePercentage": 50, "femalePercentage": 50, "ageConfig": {"mode": "exact", "value": 30}},
  "location": {"mode": "single", "singleCountry": "US"}
}`
	cfg, err := LoadFile(writeTemp(t, "gen.json", jsonConfig))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Count)
	require.Len(t, cfg.Fields, 1)
	assert.Equal(t, "XX-##", cfg.Fields[0].Options.Pattern)
	assert.Equal(t, "US", cfg.Location.SingleCountry)
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	_, err := LoadFile(writeTemp(t, "gen.toml", "count = 3"))
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
