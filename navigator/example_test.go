package navigator_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/navigator"
)

// ExampleNavigator walls off the end cell, then opens a gap.
func ExampleNavigator() {
	n, _ := navigator.New(navigator.WithSize(5, 3), navigator.WithStart(0, 1), navigator.WithEnd(4, 1))
	fmt.Println("open:", n.Result().Cost)

	for y := 0; y < 3; y++ {
		_ = n.ToggleObstacle(2, y)
	}
	fmt.Println("walled:", n.Result().Found)

	_ = n.ToggleObstacle(2, 0)
	fmt.Println("gap:", n.Result().Cost, n.Path())
	// Output:
	// open: 4
	// walled: false
	// gap: 6 [{0 1} {1 1} {1 0} {2 0} {3 0} {3 1} {4 1}]
}
