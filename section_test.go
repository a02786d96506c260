package navtui

import (
	"reflect"
	"testing"
)

func TestItemToggle(t *testing.T) {
	item := NewItem("alpha")

	var fired []bool
	item.OnToggle = func(selected bool) { fired = append(fired, selected) }

	if !item.Toggle() {
		t.Error("first toggle should select")
	}
	if item.Toggle() {
		t.Error("second toggle should deselect")
	}
	if !reflect.DeepEqual(fired, []bool{true, false}) {
		t.Errorf("callbacks = %v, want [true false]", fired)
	}
}

func TestItemSetSelected(t *testing.T) {
	item := NewItem("alpha")
	calls := 0
	item.OnToggle = func(bool) { calls++ }

	if !item.SetSelected(true) {
		t.Error("SetSelected(true) on unselected item reported no change")
	}
	if item.SetSelected(true) {
		t.Error("redundant SetSelected reported a change")
	}
	if calls != 1 {
		t.Errorf("callback fired %d times, want 1", calls)
	}
}

func TestItemDisplayString(t *testing.T) {
	item := NewItemDesc("alpha", "the first")
	if got := item.DisplayString("✓ ", "  "); got != "  alpha" {
		t.Errorf("unselected display = %q", got)
	}
	item.Selected = true
	if got := item.DisplayString("✓ ", "  "); got != "✓ alpha" {
		t.Errorf("selected display = %q", got)
	}
	if got := item.FullDescription(); got != "alpha - the first" {
		t.Errorf("FullDescription() = %q", got)
	}
}

func TestSectionToggleItem(t *testing.T) {
	sec := NewSection("letters")
	sec.AddItemNames("a", "b", "c")

	var got []int
	sec.OnItemToggled = func(index int, selected bool) {
		got = append(got, index)
		if !selected {
			t.Errorf("index %d reported deselected on first toggle", index)
		}
	}

	if !sec.ToggleItem(1) {
		t.Fatal("in-range toggle returned false")
	}
	if sec.ToggleItem(5) {
		t.Error("out-of-range toggle returned true")
	}
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("section callback indices = %v, want [1]", got)
	}
}

func TestSectionSelectionQueries(t *testing.T) {
	sec := NewSection("letters")
	sec.AddItemNames("a", "b", "c", "d")
	sec.SetItemSelected(0, true)
	sec.SetItemSelected(2, true)

	if got := sec.SelectedCount(); got != 2 {
		t.Errorf("SelectedCount() = %d", got)
	}
	if got := sec.SelectedNames(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("SelectedNames() = %v", got)
	}
	if got := sec.SelectedIndices(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("SelectedIndices() = %v", got)
	}
}

func TestSectionBulkSelection(t *testing.T) {
	sec := NewSection("letters")
	sec.AddItemNames("a", "b", "c")
	sec.SetItemSelected(0, true)

	changes := 0
	sec.OnItemToggled = func(int, bool) { changes++ }

	t.Run("select all", func(t *testing.T) {
		sec.SelectAll()
		if sec.SelectedCount() != 3 {
			t.Fatalf("SelectedCount() = %d", sec.SelectedCount())
		}
		// "a" was already selected, so only two items changed.
		if changes != 2 {
			t.Errorf("callbacks = %d, want 2", changes)
		}
	})

	t.Run("invert", func(t *testing.T) {
		sec.InvertSelections()
		if sec.SelectedCount() != 0 {
			t.Fatalf("SelectedCount() = %d after invert", sec.SelectedCount())
		}
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		changes = 0
		sec.ClearSelections()
		if changes != 0 {
			t.Errorf("clearing an empty selection fired %d callbacks", changes)
		}
	})
}

func TestSectionSort(t *testing.T) {
	sec := NewSection("letters")
	sec.AddItemNames("c", "a", "b")
	sec.SetItemSelected(2, true) // "b"

	sec.SortByName()
	if sec.Items[0].Name != "a" || sec.Items[2].Name != "c" {
		t.Errorf("SortByName order: %v %v %v", sec.Items[0].Name, sec.Items[1].Name, sec.Items[2].Name)
	}

	sec.SortBySelection(true)
	if sec.Items[0].Name != "b" || !sec.Items[0].Selected {
		t.Errorf("SortBySelection did not float the selected item: first is %q", sec.Items[0].Name)
	}
}

func TestSectionRemoveItem(t *testing.T) {
	sec := NewSection("letters")
	sec.AddItemNames("a", "b", "c")

	if !sec.RemoveItemByName("b") {
		t.Fatal("RemoveItemByName failed")
	}
	if sec.Len() != 2 || sec.ItemByName("b") != nil {
		t.Errorf("item still present after removal")
	}
	if sec.RemoveItem(10) {
		t.Error("out-of-range removal returned true")
	}
}

func TestSectionDisplayStrings(t *testing.T) {
	sec := NewSection("letters")
	sec.AddItemNames("a", "b", "c")
	sec.SetItemSelected(0, true)

	if got := sec.DisplayStringWithCount(); got != "letters (1/3)" {
		t.Errorf("DisplayStringWithCount() = %q", got)
	}
}

func TestSectionBuilder(t *testing.T) {
	sec := BuildSection("tools").
		Description("everyday tools").
		AddItems("hammer", "saw", "wrench").
		AddItemDesc("plane", "for wood").
		SelectItems("saw", "plane").
		SortItems().
		Build()

	if sec.Len() != 4 {
		t.Fatalf("Len() = %d", sec.Len())
	}
	if got := sec.SelectedNames(); !reflect.DeepEqual(got, []string{"plane", "saw"}) {
		t.Errorf("SelectedNames() = %v", got)
	}
	if sec.Items[0].Name != "hammer" {
		t.Errorf("sort order broken: first item %q", sec.Items[0].Name)
	}

	t.Run("filter", func(t *testing.T) {
		short := BuildSection("s").
			AddItems("ab", "abcd", "xy").
			FilterItems(func(it *SelectableItem) bool { return len(it.Name) == 2 }).
			Build()
		if short.Len() != 2 {
			t.Errorf("FilterItems kept %d items, want 2", short.Len())
		}
	})
}

func TestNavigationBuilder(t *testing.T) {
	term := newFakeTerminal()
	entered := 0
	nav := NewBuilder().
		SectionTitle("Main Menu").
		ItemsPerPage(5).
		VimKeys(true).
		Shortcut('r', "refresh").
		AddSection(BuildSection("one").AddItems("a").Build()).
		AddSection(BuildSection("two").AddItems("b").Build()).
		OnSectionSelected(func(int, *Section) { entered++ }).
		WithTerminal(term).
		Build()

	cfg := nav.Config()
	if cfg.Text.SectionTitle != "Main Menu" {
		t.Errorf("SectionTitle = %q", cfg.Text.SectionTitle)
	}
	if cfg.Layout.ItemsPerPage != 5 || !cfg.EnableVimKeys {
		t.Errorf("layout/keys not applied: %+v", cfg.Layout)
	}
	if cfg.CustomShortcuts['r'] != "refresh" {
		t.Errorf("shortcut not recorded: %v", cfg.CustomShortcuts)
	}
	if nav.SectionCount() != 2 {
		t.Fatalf("SectionCount() = %d", nav.SectionCount())
	}

	nav.EnterSection(0)
	if entered != 1 {
		t.Errorf("observer wired through builder fired %d times", entered)
	}
}
