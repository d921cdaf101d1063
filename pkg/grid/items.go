package grid

import (
	"fmt"
	"strings"
)

// Item is one entry of the grid: a source path and the label drawn on its
// tile. Items are created once during normalization and never mutated, so
// label indices survive the natural sort in dynamic-width mode.
type Item struct {
	Path  string // may be empty; an empty path renders as a placeholder
	Label string
}

// normalizeItems converts the raw input into an ordered item list.
//
// Two mutually exclusive shapes are accepted. If the settings map carries a
// structured "items" list, each record's path and label are coerced to
// strings and a blank label falls back to "{prefix} {index}"; a record that
// is a bare string instead of a map is taken as the path. Otherwise each
// raw path string becomes an item with the default label. Input order is
// preserved and no filesystem access happens here.
func normalizeItems(paths []string, data map[string]any, prefix string) []Item {
	if records, ok := itemRecords(data); ok {
		items := make([]Item, 0, len(records))
		for i, record := range records {
			item := Item{Label: defaultLabel(prefix, i)}
			if m, ok := record.(map[string]any); ok {
				if p, ok := stringValue(m["path"]); ok {
					item.Path = p
				}
				if l, ok := stringValue(m["label"]); ok && strings.TrimSpace(l) != "" {
					item.Label = l
				}
			} else if p, ok := stringValue(record); ok {
				item.Path = p
			}
			items = append(items, item)
		}
		return items
	}

	items := make([]Item, 0, len(paths))
	for i, path := range paths {
		items = append(items, Item{Path: path, Label: defaultLabel(prefix, i)})
	}
	return items
}

// itemRecords extracts the structured item list from the settings map. JSON
// decoding yields []any while TOML yields []map[string]any; both count as a
// present list.
func itemRecords(data map[string]any) ([]any, bool) {
	if data == nil {
		return nil, false
	}
	switch records := data["items"].(type) {
	case []any:
		return records, true
	case []map[string]any:
		converted := make([]any, len(records))
		for i, record := range records {
			converted[i] = record
		}
		return converted, true
	default:
		return nil, false
	}
}

// defaultLabel builds the fallback label for the item at index i (zero-based).
func defaultLabel(prefix string, i int) string {
	return fmt.Sprintf("%s %d", prefix, i+1)
}
