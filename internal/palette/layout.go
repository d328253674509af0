package palette

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// Layout is implemented by palettes that are composed of named tables.
type Layout interface {
	Owner(row, col int) (string, bool)
	Regions() []string
}

// CheckLayout verifies that every grid cell resolves to a table and that
// every table owns at least one cell that is not shadowed by another table.
func CheckLayout(l Layout) error {
	owners := set.New[string]()

	for row := range Size {
		for col := range Size {
			name, ok := l.Owner(row, col)
			if !ok {
				return fmt.Errorf("cell (%d, %d) is not owned by any table", row, col)
			}
			owners.Add(name)
		}
	}

	for _, name := range l.Regions() {
		if !owners.Contains(name) {
			return fmt.Errorf("table %s does not own any cell", name)
		}
	}
	return nil
}
