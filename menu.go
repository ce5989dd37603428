package main

import "github.com/nexidian/gocliselect"

// terminal menu driven by the arrow keys
type cliMenu struct{}

func (cliMenu) Choose(prompt string, items []MenuItem) string {
	menu := gocliselect.NewMenu(prompt)
	for _, item := range items {
		menu.AddItem(item.Label, item.ID)
	}

	choice, err := menu.Display()
	if err != nil {
		return ""
	}
	id, _ := choice.(string)
	return id
}
