package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/noteflow/internal/notes"
)

func findMetadata(res Result, label string) (string, bool) {
	for _, m := range res.Metadata {
		if m.Label == label {
			return m.Value, true
		}
	}
	return "", false
}

func TestFormatTodo_Progress(t *testing.T) {
	res := FormatTodo("[x] pay rent\n[ ] call dentist\n[x] water plants\n[ ] mow lawn")

	progress, ok := findMetadata(res, "progress")
	require.True(t, ok, "no progress metadata")
	assert.Equal(t, "2/4", progress)

	require.Len(t, res.Segments, 4)
	assert.Equal(t, KindItemDone, res.Segments[0].Kind)
	assert.Equal(t, KindItem, res.Segments[1].Kind)
	assert.Equal(t, "pay rent", res.Segments[0].Text)
}

func TestFormatTodo_NoItems(t *testing.T) {
	res := FormatTodo("just some prose")
	_, ok := findMetadata(res, "progress")
	assert.False(t, ok, "progress reported without items")
}

func TestFormatMeeting_Participants(t *testing.T) {
	res := FormatMeeting("Meeting tomorrow at 2:00 PM with @Sarah")

	participants, ok := findMetadata(res, "participants")
	require.True(t, ok, "no participants metadata")
	assert.Equal(t, "Sarah", participants)
}

func TestParticipants(t *testing.T) {
	got := Participants("sync with @Sarah and @marcus, then ping @Sarah again")
	assert.Equal(t, []string{"Sarah", "marcus"}, got)

	assert.Empty(t, Participants("nobody mentioned"))
}

func TestFormatFinance(t *testing.T) {
	res := FormatFinance("Corner Deli\nsandwich $8.50\ncoffee $3.25\nTotal: $11.75")

	merchant, ok := findMetadata(res, "merchant")
	require.True(t, ok)
	assert.Equal(t, "Corner Deli", merchant)

	total, ok := findMetadata(res, "total")
	require.True(t, ok)
	assert.Equal(t, "$11.75", total)
}

func TestFormatFinance_NoTotalLine(t *testing.T) {
	res := FormatFinance("Corner Deli\nsandwich $8.50")
	total, ok := findMetadata(res, "total")
	require.True(t, ok)
	assert.Equal(t, "$8.50", total)
}

func TestFormatShopping_ItemCount(t *testing.T) {
	res := FormatShopping("- milk\n- bread\n[x] eggs")
	items, ok := findMetadata(res, "items")
	require.True(t, ok)
	assert.Equal(t, "1/3", items)
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()

	res := r.Format(notes.TypeTodo, "[ ] one")
	_, ok := findMetadata(res, "progress")
	assert.True(t, ok)

	// Unregistered types get plain formatting.
	res = r.Format(notes.TypeJournal, "dear diary\nit rained")
	require.Len(t, res.Segments, 2)
	assert.Equal(t, KindHeading, res.Segments[0].Kind)
	assert.Equal(t, KindPlain, res.Segments[1].Kind)
	assert.Empty(t, res.Metadata)
}

func TestFormatFieldNote(t *testing.T) {
	r := NewRegistry()
	res := r.Format(notes.TypeContact, "Jane Doe\nphone: 555-123-4567")
	require.Len(t, res.Segments, 2)
	assert.Equal(t, KindPlain, res.Segments[0].Kind)
	assert.Equal(t, KindFieldLabel, res.Segments[1].Kind)
}
