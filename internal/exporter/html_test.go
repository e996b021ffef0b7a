package exporter_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/radiogrid/internal/exporter"
	"github.com/nikbrunner/radiogrid/internal/importer"
	"github.com/nikbrunner/radiogrid/internal/model"
)

func TestExportHTML_EmptyGroup(t *testing.T) {
	result := exporter.ExportHTML(model.NewGroup("empty"), model.NoSelection)

	if !strings.Contains(result, "<!DOCTYPE html>") {
		t.Error("missing DOCTYPE header")
	}
	if !strings.Contains(result, "<fieldset>") || !strings.Contains(result, "</fieldset>") {
		t.Error("missing fieldset")
	}
	if strings.Contains(result, "<legend>") {
		t.Error("unexpected legend for a group without header")
	}
	if strings.Contains(result, "<input") {
		t.Error("unexpected input in empty group")
	}
}

func TestExportHTML_Options(t *testing.T) {
	group := &model.Group{
		Name:   "size",
		Header: "Pick a size",
		Options: []model.Option{
			{ID: "s", Label: "Small"},
			{ID: "m", Label: "Medium", Disabled: true},
			{ID: "l", Label: "Large"},
		},
	}

	result := exporter.ExportHTML(group, 2)

	if !strings.Contains(result, "<legend>Pick a size</legend>") {
		t.Error("missing legend")
	}
	if !strings.Contains(result, `<input type="radio" name="size" value="s"> Small</label>`) {
		t.Errorf("missing Small input in:\n%s", result)
	}
	if !strings.Contains(result, `value="m" disabled> Medium`) {
		t.Error("expected Medium to be disabled")
	}
	if !strings.Contains(result, `value="l" checked> Large`) {
		t.Error("expected Large to be checked")
	}
	if strings.Count(result, "checked") != 1 {
		t.Error("expected exactly one checked input")
	}
}

func TestExportHTML_EscapesSpecialCharacters(t *testing.T) {
	group := &model.Group{
		Name:    `a"b`,
		Header:  "Fish & Chips",
		Options: []model.Option{{ID: "x", Label: "<Large>"}},
	}

	result := exporter.ExportHTML(group, model.NoSelection)

	if !strings.Contains(result, "Fish &amp; Chips") {
		t.Error("header not escaped")
	}
	if !strings.Contains(result, "&lt;Large&gt;") {
		t.Error("label not escaped")
	}
	if !strings.Contains(result, `name="a&#34;b"`) {
		t.Errorf("name not escaped in:\n%s", result)
	}
}

func TestExportHTML_ImportRoundtrip(t *testing.T) {
	group := &model.Group{
		Name:   "color",
		Header: "Colour",
		Options: []model.Option{
			{ID: "r", Label: "Red"},
			{ID: "g", Label: "Green & Teal", Disabled: true},
			{ID: "b", Label: "Blue"},
		},
	}

	imported, err := importer.ParseHTMLGroup(strings.NewReader(exporter.ExportHTML(group, 0)))
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	if imported.Name != group.Name || imported.Header != group.Header {
		t.Errorf("name/header = %q/%q, want %q/%q", imported.Name, imported.Header, group.Name, group.Header)
	}
	if imported.Len() != group.Len() {
		t.Fatalf("expected %d options, got %d", group.Len(), imported.Len())
	}
	for i, o := range group.Options {
		got := imported.Options[i]
		if got.Label != o.Label || got.Disabled != o.Disabled {
			t.Errorf("option %d = %+v, want label %q disabled %v", i, got, o.Label, o.Disabled)
		}
	}
}

func TestDefaultExportPath(t *testing.T) {
	path, err := exporter.DefaultExportPath("size")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(path, "size-export-") || !strings.HasSuffix(path, ".html") {
		t.Errorf("unexpected path %q", path)
	}
}
