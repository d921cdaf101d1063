package grid

import (
	"reflect"
	"testing"
)

func TestNormalizeItemsFromPaths(t *testing.T) {
	items := normalizeItems([]string{"a.png", "b.png"}, nil, "SHOT")

	want := []Item{
		{Path: "a.png", Label: "SHOT 1"},
		{Path: "b.png", Label: "SHOT 2"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %v, want %v", items, want)
	}
}

func TestNormalizeItemsCustomPrefix(t *testing.T) {
	items := normalizeItems([]string{"a.png"}, nil, "TAKE")
	if items[0].Label != "TAKE 1" {
		t.Errorf("Label = %q, want TAKE 1", items[0].Label)
	}
}

func TestNormalizeItemsFromRecords(t *testing.T) {
	data := map[string]any{
		"items": []any{
			map[string]any{"path": "shots/a.png", "label": "Opening"},
			map[string]any{"path": "shots/b.png"},                // missing label
			map[string]any{"path": "shots/c.png", "label": "  "}, // blank label
			map[string]any{"label": "No path"},
		},
	}

	items := normalizeItems(nil, data, "SHOT")
	want := []Item{
		{Path: "shots/a.png", Label: "Opening"},
		{Path: "shots/b.png", Label: "SHOT 2"},
		{Path: "shots/c.png", Label: "SHOT 3"},
		{Path: "", Label: "No path"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %v, want %v", items, want)
	}
}

func TestNormalizeItemsTOMLDecodedRecords(t *testing.T) {
	// BurntSushi/toml decodes [[items]] tables as []map[string]any, not
	// []any; the list must still be recognized.
	data := map[string]any{
		"items": []map[string]any{
			{"path": "shots/a.png", "label": "Opening"},
			{"path": "shots/b.png"},
		},
	}

	items := normalizeItems(nil, data, "SHOT")
	want := []Item{
		{Path: "shots/a.png", Label: "Opening"},
		{Path: "shots/b.png", Label: "SHOT 2"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %v, want %v", items, want)
	}
}

func TestNormalizeItemsStringRecords(t *testing.T) {
	data := map[string]any{
		"items": []any{
			"shots/a.png",
			map[string]any{"path": "shots/b.png", "label": "Second"},
		},
	}

	items := normalizeItems(nil, data, "SHOT")
	want := []Item{
		{Path: "shots/a.png", Label: "SHOT 1"},
		{Path: "shots/b.png", Label: "Second"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %v, want %v", items, want)
	}
}

func TestNormalizeItemsRecordsWinOverPaths(t *testing.T) {
	data := map[string]any{
		"items": []any{map[string]any{"path": "record.png"}},
	}
	items := normalizeItems([]string{"raw.png"}, data, "SHOT")
	if len(items) != 1 || items[0].Path != "record.png" {
		t.Errorf("items = %v, want the structured record only", items)
	}
}

func TestNormalizeItemsEmpty(t *testing.T) {
	if items := normalizeItems(nil, nil, "SHOT"); len(items) != 0 {
		t.Errorf("items = %v, want empty", items)
	}
	if items := normalizeItems(nil, map[string]any{"items": []any{}}, "SHOT"); len(items) != 0 {
		t.Errorf("items = %v, want empty", items)
	}
}
