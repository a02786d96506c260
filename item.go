package navtui

// SelectableItem is a toggleable leaf entry in a Section.
// ID defaults to 0 and is not required to be unique; assign explicit ids
// if lookup by id matters. Data carries an arbitrary user payload.
type SelectableItem struct {
	Name        string
	Description string
	Selected    bool
	ID          int
	Data        any

	// OnToggle fires whenever the selection state changes, with the new
	// state. It does not fire on a SetSelected call that changes nothing.
	OnToggle func(selected bool)
}

// NewItem creates an unselected item with the given display name.
func NewItem(name string) SelectableItem {
	return SelectableItem{Name: name}
}

// NewItemDesc creates an item with a name and description.
func NewItemDesc(name, description string) SelectableItem {
	return SelectableItem{Name: name, Description: description}
}

// Toggle flips the selection state and returns the new state.
func (it *SelectableItem) Toggle() bool {
	it.Selected = !it.Selected
	if it.OnToggle != nil {
		it.OnToggle(it.Selected)
	}
	return it.Selected
}

// SetSelected sets the selection state explicitly.
// Returns true if the state actually changed.
func (it *SelectableItem) SetSelected(selected bool) bool {
	if it.Selected == selected {
		return false
	}
	it.Selected = selected
	if it.OnToggle != nil {
		it.OnToggle(it.Selected)
	}
	return true
}

// DisplayString renders the item with the prefix matching its state.
func (it *SelectableItem) DisplayString(selectedPrefix, unselectedPrefix string) string {
	if it.Selected {
		return selectedPrefix + it.Name
	}
	return unselectedPrefix + it.Name
}

// FullDescription returns "name - description", or just the name when the
// item has no description.
func (it *SelectableItem) FullDescription() string {
	if it.Description == "" {
		return it.Name
	}
	return it.Name + " - " + it.Description
}

// HasData reports whether a user payload is attached.
func (it *SelectableItem) HasData() bool {
	return it.Data != nil
}
