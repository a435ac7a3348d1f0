package knapsack_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// ExampleInstanceBuilder builds a tiny instance, selects two items and
// prints the certificate.
func ExampleInstanceBuilder() {
	b := knapsack.NewInstanceBuilder()
	b.SetCapacity(10)
	b.AddItem(10, 5)
	b.AddItem(6, 4)
	b.AddItem(8, 6)
	inst, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sol := knapsack.NewSolution(inst)
	_ = sol.Add(0)
	_ = sol.Add(1)
	fmt.Println(sol)
	_ = knapsack.WriteCertificate(os.Stdout, sol)
	// Output:
	// items=[0 1] weight=9/10 profit=16
	// 2
	// 0
	// 1
}
