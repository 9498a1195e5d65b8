package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/dpizetta/mrdiagram/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "shapes": [
    {
      "id": "sinc_90",
      "name": "Sinc 90°",
      "description": "Slice-selective excitation pulse",
      "type": "RF",
      "tags": ["excitation", "slice-selective"],
      "usage": "Standard excitation in 2D imaging",
      "selectivity": "high",
      "duration": "medium",
      "sar": "low",
      "class": "sinc",
      "args": {"bandwidth": 4}
    },
    {
      "id": "readout_trap",
      "name": "Readout gradient",
      "description": "Frequency-encoding lobe",
      "type": "Gradient",
      "tags": ["readout"],
      "usage": "Frequency encoding",
      "selectivity": "n/a",
      "duration": "medium",
      "sar": "n/a",
      "class": "trapezoid",
      "args": {"rise_fraction": 0.2, "plateau_fraction": 0.6, "fall_fraction": 0.2}
    }
  ]
}`

const sampleYAML = `shapes:
  - id: cardiac_trigger
    name: Cardiac trigger
    description: R-wave gated acquisition start
    type: Trigger
    tags: [gating]
    usage: Cardiac imaging
    selectivity: n/a
    duration: low
    sar: n/a
    class: trigger
    args:
      position: 0.1
`

// TestLoad_JSON verifies the native shapes.json layout round-trips into a
// Catalog with fields and args intact.
func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Shapes, 2, "diagnostic dump:\n%s", spew.Sdump(cat))

	first := cat.Shapes[0]
	assert.Equal(t, "sinc_90", first.ID)
	assert.Equal(t, catalog.CategoryRF, first.Type)
	assert.Equal(t, catalog.RatingHigh, first.Selectivity)
	assert.Equal(t, "sinc", first.Class)
	assert.Equal(t, 4.0, first.Args["bandwidth"])
}

// TestLoad_YAML verifies the .yaml extension selects the YAML decoder for
// the identical record shape.
func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Shapes, 1)

	assert.Equal(t, "cardiac_trigger", cat.Shapes[0].ID)
	assert.Equal(t, catalog.CategoryTrigger, cat.Shapes[0].Type)
	assert.Equal(t, 0.1, cat.Shapes[0].Args["position"])
}

// TestParse_MalformedInput verifies decoding failures wrap ErrBadCatalog.
func TestParse_MalformedInput(t *testing.T) {
	_, err := catalog.Parse([]byte(`{"shapes": [`), catalog.FormatJSON)
	assert.ErrorIs(t, err, catalog.ErrBadCatalog, "truncated JSON must error ErrBadCatalog")

	_, err = catalog.Parse([]byte("shapes:\n  - id: [broken"), catalog.FormatYAML)
	assert.ErrorIs(t, err, catalog.ErrBadCatalog, "broken YAML must error ErrBadCatalog")
}

// TestLoad_MissingFile verifies a filesystem error surfaces instead of an
// empty catalogue.
func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
