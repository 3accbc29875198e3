package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	entries := List()

	require.Len(t, entries, 13)
	assert.Equal(t, "ancfz", entries[0].Key)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Key, entries[i].Key)
	}
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Name, entry.Key)
	}
}

func TestLookup(t *testing.T) {
	svc, ok := Lookup("vat_registration")
	require.True(t, ok)
	assert.Equal(t, "vat_registration", svc.Key)
	assert.Contains(t, svc.Name, "VAT Registration")

	_, ok = Lookup(" ifza ")
	assert.True(t, ok)

	_, ok = Lookup("space_tourism")
	assert.False(t, ok)
}

func TestSections(t *testing.T) {
	svc := Service{
		Remarks:    "Fees apply. Ok. VAT is extra.",
		Scope:      "Full setup & support",
		Documents:  "Passport <copy>; ; Visa & ID",
		Process:    "Step 1 – Consult; Step 2 – File;",
		Timeline:   " 7 working days ",
		Payment:    "Advance",
		Exclusions: "Penalties",
	}

	sections := Sections(svc)

	assert.Equal(t, "<ul><li>Fees apply.</li><li>VAT is extra.</li></ul>", sections[FieldRemarks])
	assert.Equal(t, "<p>Full setup &amp; support</p>", sections[FieldScope])
	assert.Equal(t, "<ul><li>Passport &lt;copy&gt;</li><li>Visa &amp; ID</li></ul>", sections[FieldRequiredDocuments])
	assert.Equal(t, "<ol><li>Step 1 – Consult</li><li>Step 2 – File</li></ol>", sections[FieldProcess])
	assert.Equal(t, "<p>7 working days</p>", sections[FieldTimeline])
	assert.Equal(t, "<p>Advance</p>", sections[FieldPayment])
	assert.Equal(t, "<ul><li>Penalties</li></ul>", sections[FieldExclusions])
	assert.Equal(t, "<p>"+AcceptanceClause+"</p>", sections[FieldAcceptance])
	assert.Len(t, sections, len(ContentFields()))
}

func TestSectionsForCatalogServices(t *testing.T) {
	for _, entry := range List() {
		svc, ok := Lookup(entry.Key)
		require.True(t, ok)

		sections := Sections(svc)
		assert.True(t, strings.HasPrefix(sections[FieldRemarks], "<ul><li>"), entry.Key)
		assert.True(t, strings.HasPrefix(sections[FieldProcess], "<ol><li>"), entry.Key)
		assert.NotContains(t, sections[FieldRemarks], "<li>.</li>", entry.Key)
	}
}
