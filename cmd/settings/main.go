// Command settings is a small preferences picker: toggle options across a
// few sections, quit, and get a styled summary of everything selected.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"navtui"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	itemStyle    = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("252"))
	emptyStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

func main() {
	editor := navtui.BuildSection("Editor").
		Description("Editing behavior").
		AddItemDesc("Line numbers", "Show line numbers in the gutter").
		AddItemDesc("Word wrap", "Soft-wrap long lines").
		AddItemDesc("Auto save", "Save on focus loss").
		AddItemDesc("Format on save", "Run the formatter before writing").
		SelectItems("Line numbers").
		Build()

	appearance := navtui.BuildSection("Appearance").
		Description("Colors and typography").
		AddItems("Dark mode", "High contrast", "Ligatures", "Animations").
		Build()

	privacy := navtui.BuildSection("Privacy").
		Description("What leaves this machine").
		AddItemDesc("Crash reports", "Send anonymized crash dumps").
		AddItemDesc("Usage metrics", "Send feature usage counters").
		Build()

	var final map[string][]string
	nav := navtui.NewBuilder().
		SectionTitle("Settings").
		ItemTitlePrefix("Settings / ").
		AddSections(editor, appearance, privacy).
		OnExit(func(sections []navtui.Section) {
			final = map[string][]string{}
			for i := range sections {
				if names := sections[i].SelectedNames(); len(names) > 0 {
					final[sections[i].Name] = names
				}
			}
		}).
		Build()

	if err := nav.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "settings:", err)
		os.Exit(1)
	}

	fmt.Println(headerStyle.Render("Enabled settings"))
	if len(final) == 0 {
		fmt.Println(emptyStyle.Render("nothing selected"))
		return
	}

	names := make([]string, 0, len(final))
	for name := range final {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(sectionStyle.Render(name))
		for _, item := range final[name] {
			fmt.Println(itemStyle.Render("• " + item))
		}
	}
}
