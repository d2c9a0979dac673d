package nutrition

import "strings"

// Resolve maps a lowercase label to a key of the nutrition table, or Unknown.
//
// Rules are tried in order: exact key, category name contained in the label
// (first food of that category present in the table), a specific food of any
// category contained in the label, then the alias list.
func Resolve(label string) string {
	if _, ok := table[label]; ok {
		return label
	}

	for _, c := range categories {
		if !strings.Contains(label, c.name) {
			continue
		}
		for _, food := range c.foods {
			if _, ok := table[food]; ok {
				return food
			}
		}
	}

	for _, c := range categories {
		for _, food := range c.foods {
			if _, ok := table[food]; ok && strings.Contains(label, food) {
				return food
			}
		}
	}

	for _, a := range aliases {
		if strings.Contains(label, a.label) {
			return a.food
		}
	}

	return Unknown
}

// IsFoodRelated reports whether an annotation label looks like food at all.
func IsFoodRelated(label string) bool {
	for _, k := range foodKeywords {
		if strings.Contains(label, k) {
			return true
		}
	}
	for _, c := range categories {
		for _, food := range c.foods {
			if strings.Contains(label, food) {
				return true
			}
		}
	}
	return false
}
