package board

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Left, Right, Up, Down key.Binding

	Pick, Drop, Cancel key.Binding

	ToGroupA, ToGroupB, ToUnsorted key.Binding

	Check, Reset, Next key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "zone")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "zone")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "item")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "item")),

		Pick:   key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Pick up")),
		Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),

		ToGroupA:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Group A")),
		ToGroupB:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Group B")),
		ToUnsorted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Unsorted")),

		Check: key.NewBinding(key.WithKeys("c"), key.WithHelp("C", "Check")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Reset")),
		Next:  key.NewBinding(key.WithKeys("n"), key.WithHelp("N", "Next")),
	}
}
