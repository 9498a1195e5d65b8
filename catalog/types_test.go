package catalog_test

import (
	"testing"

	"github.com/dpizetta/mrdiagram/catalog"
	"github.com/stretchr/testify/assert"
)

// TestDescriptor_Validate table-checks the record contract.
func TestDescriptor_Validate(t *testing.T) {
	valid := catalog.Descriptor{ID: "x", Type: catalog.CategoryRF, Class: "sinc"}
	assert.NoError(t, valid.Validate(), "minimal valid record must pass")

	cases := []struct {
		name string
		d    catalog.Descriptor
	}{
		{"empty id", catalog.Descriptor{Type: catalog.CategoryRF, Class: "sinc"}},
		{"empty class", catalog.Descriptor{ID: "x", Type: catalog.CategoryRF}},
		{"unknown category", catalog.Descriptor{ID: "x", Type: "Audio", Class: "sinc"}},
		{"unknown rating", catalog.Descriptor{ID: "x", Type: catalog.CategoryRF, Class: "sinc", SAR: "extreme"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.d.Validate(), catalog.ErrBadDescriptor)
		})
	}
}

// TestRating_EmptyMeansNotApplicable verifies sparse records stay legal.
func TestRating_EmptyMeansNotApplicable(t *testing.T) {
	d := catalog.Descriptor{ID: "x", Type: catalog.CategoryGradient, Class: "trapezoid"}

	assert.NoError(t, d.Validate(), "missing ratings must validate")
}

// TestCatalog_ByCategory verifies grouping preserves in-catalogue order
// inside each lane.
func TestCatalog_ByCategory(t *testing.T) {
	cat := catalog.Catalog{Shapes: []catalog.Descriptor{
		{ID: "a", Type: catalog.CategoryRF, Class: "sinc"},
		{ID: "b", Type: catalog.CategoryGradient, Class: "trapezoid"},
		{ID: "c", Type: catalog.CategoryRF, Class: "gauss"},
	}}

	groups := cat.ByCategory()
	assert.Len(t, groups, 2)
	assert.Equal(t, "a", groups[catalog.CategoryRF][0].ID)
	assert.Equal(t, "c", groups[catalog.CategoryRF][1].ID)
	assert.Equal(t, "b", groups[catalog.CategoryGradient][0].ID)
}
