package domain_test

import (
	"fmt"

	"github.com/mouse-blink/knightpath/internal/domain"
	m "github.com/mouse-blink/knightpath/internal/model"
)

func ExampleFindPaths() {
	paths, err := domain.FindPaths(m.NewCell(0, 0), m.NewCell(3, 3), 6, 3)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, p := range paths {
		fmt.Println(p)
	}

	// Output:
	// a1 → b3 → d4
	// a1 → c2 → d4
}

func ExampleLegalMoves() {
	fmt.Println(domain.LegalMoves(m.NewCell(0, 0), 6))

	// Output:
	// [b3 c2]
}
