package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/radiogrid/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/<group>-export-YYYY-MM-DD.html
func DefaultExportPath(groupName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if groupName == "" {
		groupName = "radiogrid"
	}
	filename := fmt.Sprintf("%s-export-%s.html", groupName, time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML writes the group as an HTML fieldset of radio inputs. The
// option at selected, if any, is marked checked.
func ExportHTML(group *model.Group, selected int) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<fieldset>\n")

	if group.Header != "" {
		fmt.Fprintf(&b, "    <legend>%s</legend>\n", html.EscapeString(group.Header))
	}

	name := html.EscapeString(group.Name)
	for i, option := range group.Options {
		var attrs strings.Builder
		if i == selected {
			attrs.WriteString(" checked")
		}
		if option.Disabled {
			attrs.WriteString(" disabled")
		}
		fmt.Fprintf(&b,
			"    <label><input type=\"radio\" name=\"%s\" value=\"%s\"%s> %s</label>\n",
			name,
			html.EscapeString(option.ID),
			attrs.String(),
			html.EscapeString(option.Label),
		)
	}

	b.WriteString("</fieldset>\n")

	return b.String()
}
