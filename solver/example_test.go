package solver_test

import (
	"fmt"

	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/katalvlaran/knapsolver/solver"
)

// ExampleDynamicProgrammingPrimalDual solves a three-item instance.
func ExampleDynamicProgrammingPrimalDual() {
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

	res, err := solver.DynamicProgrammingPrimalDual(inst, solver.WithPartialSolutionSize(8))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("value:", res.Value, "bound:", res.Bound, "optimal:", res.Optimal())
	fmt.Println(res.Solution)
	// Output:
	// value: 16 bound: 16 optimal: true
	// items=[0 1] weight=9/10 profit=16
}

// ExampleBellman uses the table oracle on the same instance.
func ExampleBellman() {
	b := knapsack.NewInstanceBuilder()
	b.SetCapacity(10)
	b.AddItem(10, 5)
	b.AddItem(6, 4)
	b.AddItem(8, 6)
	inst, _ := b.Build()

	res, err := solver.Bellman(inst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Value, res.Solution.Items())
	// Output: 16 [0 1]
}
