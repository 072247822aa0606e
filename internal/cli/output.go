package cli

import (
	"fmt"
	"strings"

	"github.com/mmcdole/embygo/pkg/emby"
)

// renderObjects prints a resolved sequence as an aligned, styled listing.
func renderObjects(objs []emby.Object) string {
	if len(objs) == 0 {
		return dimStyle.Render("no results")
	}

	nameWidth := 0
	for _, obj := range objs {
		if w := len(obj.Name()); w > nameWidth {
			nameWidth = w
		}
	}
	if nameWidth > 60 {
		nameWidth = 60
	}

	var b strings.Builder
	for _, obj := range objs {
		name := obj.Name()
		if len(name) > 60 {
			name = name[:57] + "..."
		}
		kind := obj.EntityType()
		if kind == "" {
			kind = "Unknown"
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			titleStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
			accentStyle.Render(fmt.Sprintf("%-12s", kind)),
			dimStyle.Render(obj.ID()),
		)
	}
	return b.String()
}

// renderRecord prints a raw record (server info, single item dump).
func renderRecord(record map[string]any) string {
	var b strings.Builder
	for _, key := range []string{"ServerName", "Version", "OperatingSystem", "Id"} {
		if val, ok := record[key]; ok {
			fmt.Fprintf(&b, "%s %v\n", subtitleStyle.Render(key+":"), val)
		}
	}
	if b.Len() == 0 {
		fmt.Fprintf(&b, "%v\n", record)
	}
	return b.String()
}
