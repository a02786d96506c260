// Command statesave demonstrates persisting selections between runs. The
// picker loads its previous state from a TOML file next to the binary,
// and writes it back on exit.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"navtui"
)

const stateFile = "statesave.toml"

// savedState is the on-disk shape: section name to selected item names.
type savedState struct {
	Selections map[string][]string `toml:"selections"`
}

func main() {
	state, err := loadState(stateFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "statesave:", err)
		os.Exit(1)
	}

	sections := []navtui.Section{
		navtui.BuildSection("Languages").
			AddItems("Go", "Rust", "Python", "Zig", "OCaml").
			SelectItems(state.Selections["Languages"]...).
			Build(),
		navtui.BuildSection("Editors").
			AddItems("vim", "emacs", "helix", "zed").
			SelectItems(state.Selections["Editors"]...).
			Build(),
		navtui.BuildSection("Shells").
			AddItems("bash", "zsh", "fish", "nushell").
			SelectItems(state.Selections["Shells"]...).
			Build(),
	}

	nav := navtui.NewBuilder().
		SectionTitle("Preferences (saved between runs)").
		AddSections(sections...).
		OnExit(func(final []navtui.Section) {
			out := savedState{Selections: map[string][]string{}}
			for i := range final {
				if names := final[i].SelectedNames(); len(names) > 0 {
					out.Selections[final[i].Name] = names
				}
			}
			if err := saveState(stateFile, out); err != nil {
				fmt.Fprintln(os.Stderr, "statesave: save:", err)
				return
			}
			fmt.Printf("saved %d section(s) to %s\n", len(out.Selections), stateFile)
		}).
		Build()

	if err := nav.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "statesave:", err)
		os.Exit(1)
	}
}

func loadState(path string) (savedState, error) {
	var state savedState
	if _, err := toml.DecodeFile(path, &state); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return savedState{Selections: map[string][]string{}}, nil
		}
		return state, fmt.Errorf("load %s: %w", path, err)
	}
	if state.Selections == nil {
		state.Selections = map[string][]string{}
	}
	return state, nil
}

func saveState(path string, state savedState) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(state)
}
