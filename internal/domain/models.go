package domain

import "strconv"

// Item represents one placeholder in the carousel strip
type Item struct {
	Index int
	Label string
}

// Items builds the placeholders for a strip of total items, labelled from 1
func Items(total int) []Item {
	if total < 0 {
		total = 0
	}
	items := make([]Item, total)
	for i := range items {
		items[i] = Item{
			Index: i,
			Label: strconv.Itoa(i + 1),
		}
	}
	return items
}
