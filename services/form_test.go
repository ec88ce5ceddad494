package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileForm_SplitsBlocksAndGuideFields(t *testing.T) {
	form := map[string][]string{
		"tour_name":  {"City Walk"},
		"b1:name":    {"Intro"},
		"b1:text":    {"Welcome"},
		"b2:name":    {"Map"},
		"b2:extra":   {"kept as is"},
		"tags":       {"1", "2"},
		"unrelated":  {"x"},
		"b1:colon:y": {"v"},
	}

	blocks, guide := ReconcileForm(form, nil)

	assert.Len(t, blocks, 2)
	assert.Equal(t, "Intro", blocks["b1"].String("name"))
	assert.Equal(t, "Welcome", blocks["b1"].String("text"))
	assert.Equal(t, "Map", blocks["b2"].String("name"))
	// unknown attributes pass through verbatim
	assert.Equal(t, "kept as is", blocks["b2"].String("extra"))
	// only the first colon separates id from attribute
	assert.Equal(t, "v", blocks["b1"].String("colon:y"))

	// single values collapse, multi-values stay ordered
	assert.Equal(t, "City Walk", guide.String("tour_name"))
	assert.Equal(t, []string{"1", "2"}, guide.List("tags"))
	assert.Equal(t, "x", guide.String("unrelated"))
}

func TestReconcileForm_CheckboxNormalization(t *testing.T) {
	form := map[string][]string{
		"b1:name":        {"A"},
		"b1:show_on_map": {"on"},
		"b2:name":        {"B"},
	}

	blocks, _ := ReconcileForm(form, []string{"show_on_map", "pinned"})

	// every checkbox name is present in every block, as a bool
	for id, block := range blocks {
		for _, cb := range []string{"show_on_map", "pinned"} {
			_, ok := block[cb].(bool)
			assert.True(t, ok, "block %s checkbox %s should be a bool", id, cb)
		}
	}

	assert.True(t, blocks["b1"].Bool("show_on_map"))
	assert.False(t, blocks["b1"].Bool("pinned"))
	assert.False(t, blocks["b2"].Bool("show_on_map"))
}

func TestReconcileForm_SingleTagCollapsesToScalar(t *testing.T) {
	form := map[string][]string{
		"tags": {"12"},
	}

	_, guide := ReconcileForm(form, nil)

	// the collapsed scalar still reads back as a one-element list,
	// not as per-character ids
	assert.Equal(t, []string{"12"}, guide.List("tags"))
}

func TestReconcileForm_RoundTrip(t *testing.T) {
	original := map[string]map[string]string{
		"10": {"name": "Intro", "text": "Welcome", "row": "0", "height": "2"},
		"11": {"name": "Outro", "text": "Bye", "row": "2", "height": "1"},
	}

	form := map[string][]string{"tour_name": {"T"}}
	for id, attrs := range original {
		for k, v := range attrs {
			form[id+":"+k] = []string{v}
		}
	}

	blocks, _ := ReconcileForm(form, nil)

	assert.Len(t, blocks, len(original))
	for id, attrs := range original {
		for k, v := range attrs {
			assert.Equal(t, v, blocks[id].String(k))
		}
	}
}

func TestBlockFields_Accessors(t *testing.T) {
	b := BlockFields{
		"row":      "3",
		"height":   "oops",
		"latitude": "55.75",
	}

	assert.Equal(t, 3, b.Int("row"))
	assert.Equal(t, 0, b.Int("height"))
	assert.Equal(t, 0, b.Int("missing"))

	lat := b.Float("latitude")
	if assert.NotNil(t, lat) {
		assert.InDelta(t, 55.75, *lat, 0.0001)
	}
	assert.Nil(t, b.Float("longitude"))

	assert.True(t, b.Has("row"))
	assert.False(t, b.Has("longitude"))
}
