package services

import (
	"strconv"
	"strings"
)

// The tour editor posts every block attribute as a flat field named
// "<blockId>:<attribute>", while tour-level fields carry no colon.
// ReconcileForm folds that encoding back into one attribute map per block
// plus the tour-level fields.

// BlockFields holds the raw attributes of one submitted block. Values are
// strings as posted, except checkbox attributes which are normalized to bools.
type BlockFields map[string]interface{}

// GuideFields holds the tour-level form fields. A field with a single value
// collapses to a string; multi-valued fields (the tag multi-select) keep the
// ordered slice.
type GuideFields map[string]interface{}

// ReconcileForm splits the flat form into per-block attribute maps keyed by
// block id and the tour-level fields. Every name in checkboxes is guaranteed
// present in every block map, true iff the field was submitted at all: an
// unchecked checkbox simply never appears in the payload.
func ReconcileForm(values map[string][]string, checkboxes []string) (map[string]BlockFields, GuideFields) {
	blocks := make(map[string]BlockFields)
	guide := make(GuideFields)

	for key, val := range values {
		if len(val) == 0 {
			continue
		}
		if strings.Contains(key, ":") {
			parts := strings.SplitN(key, ":", 2)
			id, fieldName := parts[0], parts[1]
			if _, ok := blocks[id]; !ok {
				blocks[id] = make(BlockFields)
			}
			blocks[id][fieldName] = val[0]
		} else {
			if len(val) > 1 {
				guide[key] = val
			} else {
				guide[key] = val[0]
			}
		}
	}

	for _, block := range blocks {
		for _, cb := range checkboxes {
			_, present := block[cb]
			block[cb] = present
		}
	}

	return blocks, guide
}

func (b BlockFields) String(key string) string {
	if s, ok := b[key].(string); ok {
		return s
	}
	return ""
}

// Int reads a numeric attribute; missing or malformed values coerce to 0,
// matching the column defaults.
func (b BlockFields) Int(key string) int {
	n, err := strconv.Atoi(b.String(key))
	if err != nil {
		return 0
	}
	return n
}

func (b BlockFields) Bool(key string) bool {
	v, ok := b[key].(bool)
	return ok && v
}

// Float reads an optional coordinate; missing or malformed values map to nil.
func (b BlockFields) Float(key string) *float64 {
	f, err := strconv.ParseFloat(b.String(key), 64)
	if err != nil {
		return nil
	}
	return &f
}

// Has reports whether the attribute was submitted at all.
func (b BlockFields) Has(key string) bool {
	_, ok := b[key]
	return ok
}

func (g GuideFields) String(key string) string {
	if s, ok := g[key].(string); ok {
		return s
	}
	return ""
}

// List reads a multi-valued field. A collapsed single value comes back as a
// one-element slice; an absent field as nil.
func (g GuideFields) List(key string) []string {
	switch v := g[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}
