package navtui

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// fakeTerminal feeds a scripted key sequence to the control loop and
// records everything printed.
type fakeTerminal struct {
	keys     []KeyEvent
	pos      int
	rows     int
	cols     int
	out      bytes.Buffer
	setups   int
	restores int
}

func newFakeTerminal(keys ...KeyEvent) *fakeTerminal {
	return &fakeTerminal{keys: keys, rows: 24, cols: 80}
}

func (f *fakeTerminal) Setup() error { f.setups++; return nil }

func (f *fakeTerminal) Restore() error { f.restores++; return nil }

func (f *fakeTerminal) Size() (int, int) { return f.rows, f.cols }

func (f *fakeTerminal) ClearScreen() {}

func (f *fakeTerminal) MoveCursor(row, col int) {}

func (f *fakeTerminal) Print(s string) { f.out.WriteString(s) }

func (f *fakeTerminal) Flush() {}

func (f *fakeTerminal) ReadKey() (KeyEvent, error) {
	if f.pos >= len(f.keys) {
		return KeyEvent{}, io.EOF
	}
	ev := f.keys[f.pos]
	f.pos++
	return ev, nil
}

func char(c byte) KeyEvent { return KeyEvent{Key: KeyNormal, Char: c} }

// testNav builds a NavigationTUI over a fake terminal with two sections of
// five items each and a page size of two.
func testNav(keys ...KeyEvent) (*NavigationTUI, *fakeTerminal) {
	term := newFakeTerminal(keys...)
	cfg := DefaultConfig()
	cfg.Layout.ItemsPerPage = 2
	nav := NewWithTerminal(cfg, term)
	nav.AddSection(BuildSection("fruit").AddItems("apple", "banana", "cherry", "damson", "elder").Build())
	nav.AddSection(BuildSection("veg").AddItems("carrot", "daikon", "endive", "fennel", "garlic").Build())
	return nav, term
}

func TestRunRefusesEmpty(t *testing.T) {
	nav := NewWithTerminal(DefaultConfig(), newFakeTerminal())
	if err := nav.Run(); !errors.Is(err, ErrNoSections) {
		t.Fatalf("Run() = %v, want ErrNoSections", err)
	}
}

func TestRunRestoresTerminalAndFiresExit(t *testing.T) {
	nav, term := testNav(char('q'))
	exits := 0
	nav.SetExitFunc(func(sections []Section) {
		exits++
		if len(sections) != 2 {
			t.Errorf("exit callback got %d sections, want 2", len(sections))
		}
	})
	if err := nav.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if term.setups != 1 {
		t.Errorf("setups = %d, want 1", term.setups)
	}
	if term.restores == 0 {
		t.Error("terminal was never restored")
	}
	if exits != 1 {
		t.Errorf("exit callback fired %d times, want 1", exits)
	}
}

func TestEnterSection(t *testing.T) {
	nav, _ := testNav()

	var gotIndex = -1
	var gotName string
	nav.SetSectionSelectedFunc(func(i int, sec *Section) {
		gotIndex = i
		gotName = sec.Name
	})

	nav.EnterSection(1)
	if nav.State() != StateItems {
		t.Fatalf("state = %v, want items", nav.State())
	}
	if gotIndex != 1 || gotName != "veg" {
		t.Errorf("section-selected callback got (%d, %q), want (1, veg)", gotIndex, gotName)
	}
	if nav.CurrentPage() != 0 || nav.CurrentSelectionIndex() != 0 {
		t.Errorf("page/selection = %d/%d, want 0/0", nav.CurrentPage(), nav.CurrentSelectionIndex())
	}

	t.Run("invalid index ignored", func(t *testing.T) {
		nav.ReturnToSections()
		nav.EnterSection(7)
		if nav.State() != StateSections {
			t.Error("invalid EnterSection changed state")
		}
	})
}

func TestReturnToSectionsRestoresCursor(t *testing.T) {
	nav, _ := testNav()
	nav.EnterSection(1)
	nav.MoveDown()
	nav.ReturnToSections()

	if nav.State() != StateSections {
		t.Fatalf("state = %v, want sections", nav.State())
	}
	if nav.CurrentSelectionIndex() != 1 {
		t.Errorf("selection = %d, want cursor back on section 1", nav.CurrentSelectionIndex())
	}
	if nav.CurrentPage() != 0 {
		t.Errorf("page = %d, want 0", nav.CurrentPage())
	}
}

func TestReturnToSectionsFiresSectionExit(t *testing.T) {
	nav, _ := testNav()
	exited := 0
	nav.Section(0).OnExit = func() { exited++ }
	nav.EnterSection(0)
	nav.ReturnToSections()
	if exited != 1 {
		t.Errorf("section exit callback fired %d times, want 1", exited)
	}

	// A no-op in section view.
	nav.ReturnToSections()
	if exited != 1 {
		t.Errorf("redundant return fired exit callback, count = %d", exited)
	}
}

func TestMoveDownCrossesPageForward(t *testing.T) {
	nav, _ := testNav()
	nav.EnterSection(0)

	pageEvents := 0
	nav.SetPageChangedFunc(func(page, total int) {
		pageEvents++
		if page != 1 || total != 3 {
			t.Errorf("page-changed got (%d, %d), want (1, 3)", page, total)
		}
	})

	nav.MoveDown() // item 1, last of page 0
	nav.MoveDown() // crosses to page 1
	if nav.CurrentPage() != 1 {
		t.Fatalf("page = %d, want 1", nav.CurrentPage())
	}
	if nav.CurrentSelectionIndex() != 0 {
		t.Errorf("selection = %d, want 0 on new page", nav.CurrentSelectionIndex())
	}
	if pageEvents != 1 {
		t.Errorf("page-changed fired %d times, want 1", pageEvents)
	}
}

func TestMoveUpCrossesPageBackward(t *testing.T) {
	nav, _ := testNav()
	nav.EnterSection(0)
	nav.GoToPage(1)

	nav.MoveUp()
	if nav.CurrentPage() != 0 {
		t.Fatalf("page = %d, want 0", nav.CurrentPage())
	}
	if nav.CurrentSelectionIndex() != 1 {
		t.Errorf("selection = %d, want last entry of previous page", nav.CurrentSelectionIndex())
	}
}

func TestMoveClampsAtEdges(t *testing.T) {
	nav, _ := testNav()

	nav.MoveUp()
	if nav.CurrentSelectionIndex() != 0 {
		t.Errorf("section cursor moved above 0")
	}
	nav.MoveDown()
	nav.MoveDown()
	nav.MoveDown()
	if nav.CurrentSelectionIndex() != 1 {
		t.Errorf("section cursor = %d, want clamp at last section", nav.CurrentSelectionIndex())
	}

	nav.EnterSection(0)
	nav.GoToPage(2) // final page holds only item 4
	nav.MoveDown()
	if nav.CurrentPage() != 2 || nav.CurrentSelectionIndex() != 0 {
		t.Errorf("cursor moved past the last item: page %d sel %d", nav.CurrentPage(), nav.CurrentSelectionIndex())
	}
}

func TestGoToPageValidation(t *testing.T) {
	nav, _ := testNav()
	nav.EnterSection(0)

	events := 0
	nav.SetPageChangedFunc(func(page, total int) { events++ })

	nav.GoToPage(5)  // out of range
	nav.GoToPage(-1) // out of range
	nav.GoToPage(0)  // already there
	if nav.CurrentPage() != 0 || events != 0 {
		t.Fatalf("invalid jumps mutated state: page %d, events %d", nav.CurrentPage(), events)
	}

	nav.MoveDown()
	nav.GoToPage(2)
	if nav.CurrentSelectionIndex() != 0 {
		t.Errorf("selection = %d, want reset to 0 after page jump", nav.CurrentSelectionIndex())
	}
	if events != 1 {
		t.Errorf("page-changed fired %d times, want 1", events)
	}
}

func TestToggleCurrentItem(t *testing.T) {
	nav, _ := testNav()
	nav.EnterSection(0)
	nav.GoToPage(1)
	nav.MoveDown() // global index 3, "damson"

	var toggles []bool
	nav.SetItemToggledFunc(func(sectionIndex, itemIndex int, selected bool) {
		if sectionIndex != 0 || itemIndex != 3 {
			t.Errorf("toggled (%d, %d), want global index (0, 3)", sectionIndex, itemIndex)
		}
		toggles = append(toggles, selected)
	})

	nav.ToggleCurrentItem()
	nav.ToggleCurrentItem()

	if len(toggles) != 2 || !toggles[0] || toggles[1] {
		t.Errorf("toggles = %v, want [true false]", toggles)
	}
	if nav.Section(0).Item(3).Selected {
		t.Error("double toggle did not restore the initial state")
	}
}

func TestToggleIgnoredInSectionView(t *testing.T) {
	nav, _ := testNav()
	fired := false
	nav.SetItemToggledFunc(func(int, int, bool) { fired = true })
	nav.ToggleCurrentItem()
	if fired {
		t.Error("toggle fired in section view")
	}
}

func TestSelectCurrentItemUsesCursor(t *testing.T) {
	nav, _ := testNav()
	nav.MoveDown() // cursor on section 1

	var entered = -1
	nav.SetSectionSelectedFunc(func(i int, sec *Section) { entered = i })
	nav.SelectCurrentItem()
	if entered != 1 {
		t.Errorf("entered section %d, want the one under the cursor (1)", entered)
	}
}

func TestQuitBeatsCustomHook(t *testing.T) {
	nav, _ := testNav(char('q'))
	hookSaw := false
	nav.SetCustomCommandFunc(func(c byte, s NavState) bool {
		hookSaw = true
		return true
	})
	if err := nav.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if hookSaw {
		t.Error("custom hook saw the quit key")
	}
}

func TestCustomHookConsumesEvent(t *testing.T) {
	nav, _ := testNav(char('2'), char('q'))
	nav.SetCustomCommandFunc(func(c byte, s NavState) bool {
		return c == '2'
	})
	if err := nav.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if nav.State() != StateSections {
		t.Error("consumed digit still triggered quick select")
	}
}

func TestDigitOverloading(t *testing.T) {
	t.Run("section view quick select", func(t *testing.T) {
		nav, _ := testNav()
		nav.handleInput(char('2'))
		if nav.State() != StateItems || nav.CurrentSectionIndex() != 1 {
			t.Errorf("digit 2 did not enter section 1")
		}
	})

	t.Run("out of range digit ignored", func(t *testing.T) {
		nav, _ := testNav()
		nav.handleInput(char('9'))
		if nav.State() != StateSections {
			t.Error("digit beyond section count entered a section")
		}
	})

	t.Run("item view page jump", func(t *testing.T) {
		nav, _ := testNav()
		nav.EnterSection(0)
		nav.handleInput(char('3'))
		if nav.CurrentPage() != 2 {
			t.Errorf("page = %d, want 2 after digit 3", nav.CurrentPage())
		}
	})

	t.Run("disabled quick select", func(t *testing.T) {
		nav, _ := testNav()
		cfg := nav.Config()
		cfg.EnableQuickSelect = false
		nav.UpdateConfig(cfg)
		nav.handleInput(char('2'))
		if nav.State() == StateItems {
			t.Error("quick select fired while disabled")
		}
	})
}

func TestItemViewLetterCommands(t *testing.T) {
	nav, _ := testNav()
	nav.EnterSection(0)

	nav.handleInput(char('a'))
	if got := nav.Section(0).SelectedCount(); got != 5 {
		t.Fatalf("select all left %d selected, want 5", got)
	}

	nav.handleInput(char('n'))
	if got := nav.Section(0).SelectedCount(); got != 0 {
		t.Fatalf("clear left %d selected, want 0", got)
	}

	nav.handleInput(char('b'))
	if nav.State() != StateSections {
		t.Error("b did not return to sections")
	}
}

func TestVimKeys(t *testing.T) {
	nav, _ := testNav()
	cfg := nav.Config()
	cfg.EnableVimKeys = true
	nav.UpdateConfig(cfg)

	nav.handleInput(char('j'))
	if nav.CurrentSelectionIndex() != 1 {
		t.Errorf("j did not move down")
	}
	nav.handleInput(char('k'))
	if nav.CurrentSelectionIndex() != 0 {
		t.Errorf("k did not move up")
	}

	nav.EnterSection(0)
	nav.handleInput(char('h'))
	if nav.State() != StateSections {
		t.Error("h did not return to sections")
	}
}

func TestEnterKeyByState(t *testing.T) {
	nav, _ := testNav()
	nav.handleInput(KeyEvent{Key: KeyEnter})
	if nav.State() != StateItems {
		t.Fatal("enter did not open the section under the cursor")
	}
	nav.handleInput(KeyEvent{Key: KeyEnter})
	if nav.State() != StateSections {
		t.Error("enter in item view did not return to sections")
	}
}

func TestStateChangedFiresOnlyOnChange(t *testing.T) {
	nav, _ := testNav()
	var transitions [][2]NavState
	nav.SetStateChangedFunc(func(oldState, newState NavState) {
		transitions = append(transitions, [2]NavState{oldState, newState})
	})

	nav.ReturnToSections() // already there
	nav.EnterSection(0)
	nav.EnterSection(1) // stays in item view
	nav.ReturnToSections()

	if len(transitions) != 2 {
		t.Fatalf("state-changed fired %d times, want 2: %v", len(transitions), transitions)
	}
	if transitions[0] != [2]NavState{StateSections, StateItems} {
		t.Errorf("first transition = %v", transitions[0])
	}
}

func TestRemoveActiveSectionRevalidates(t *testing.T) {
	nav, _ := testNav()
	nav.EnterSection(1)
	nav.GoToPage(1)

	if !nav.RemoveSection(1) {
		t.Fatal("RemoveSection(1) failed")
	}
	if nav.CurrentSectionIndex() != 0 {
		t.Errorf("section index = %d, want clamped to 0", nav.CurrentSectionIndex())
	}
	if start, end := nav.PageBounds(); nav.CurrentSelectionIndex() >= end-start {
		t.Errorf("selection %d outside page bounds [%d, %d)", nav.CurrentSelectionIndex(), start, end)
	}
}

func TestAllSelectionsOmitsEmptySections(t *testing.T) {
	nav, _ := testNav()
	nav.Section(0).SetItemSelected(1, true)
	nav.Section(0).SetItemSelected(4, true)

	got := nav.AllSelections()
	if len(got) != 1 {
		t.Fatalf("AllSelections() has %d keys, want 1: %v", len(got), got)
	}
	names := got["fruit"]
	if len(names) != 2 || names[0] != "banana" || names[1] != "elder" {
		t.Errorf("fruit selections = %v, want [banana elder] in display order", names)
	}
	if _, ok := got["veg"]; ok {
		t.Error("empty section present in AllSelections")
	}
}

func TestSectionSelections(t *testing.T) {
	nav, _ := testNav()
	nav.Section(1).SetItemSelected(0, true)

	if got := nav.SectionSelections(1); len(got) != 1 || got[0] != "carrot" {
		t.Errorf("SectionSelections(1) = %v, want [carrot]", got)
	}
	if got := nav.SectionSelections(9); got != nil {
		t.Errorf("SectionSelections(9) = %v, want nil", got)
	}
}

func TestScriptedSession(t *testing.T) {
	// Enter the first section, select two items across a page boundary,
	// back out, then quit.
	nav, term := testNav(
		KeyEvent{Key: KeyEnter},  // enter "fruit"
		KeyEvent{Key: KeySpace},  // toggle "apple"
		KeyEvent{Key: KeyDown},   // "banana"
		KeyEvent{Key: KeyDown},   // page 1, "cherry"
		KeyEvent{Key: KeySpace},  // toggle "cherry"
		KeyEvent{Key: KeyEscape}, // back to sections
		char('q'),
	)

	var final map[string][]string
	nav.SetExitFunc(func(sections []Section) {
		final = map[string][]string{}
		for i := range sections {
			if names := sections[i].SelectedNames(); len(names) > 0 {
				final[sections[i].Name] = names
			}
		}
	})

	if err := nav.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := []string{"apple", "cherry"}
	got := final["fruit"]
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("final fruit selections = %v, want %v", got, want)
	}
	if term.restores == 0 {
		t.Error("terminal left in raw mode")
	}
	if term.out.Len() == 0 {
		t.Error("nothing was rendered")
	}
}

func TestExitStopsLoop(t *testing.T) {
	nav, term := testNav(char('x'), char('z'))
	nav.SetCustomCommandFunc(func(c byte, s NavState) bool {
		if c == 'x' {
			nav.Exit()
			return true
		}
		return false
	})
	if err := nav.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if term.pos != 1 {
		t.Errorf("loop consumed %d keys, want 1", term.pos)
	}
}
