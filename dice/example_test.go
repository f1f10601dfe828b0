package dice_test

import (
	"fmt"

	"github.com/katalvlaran/shipseg/dice"
	"github.com/katalvlaran/shipseg/tensor"
)

// ExampleBinaryLoss demonstrates the binary Dice loss on a tiny mask:
// confident, correct logits drive the loss toward −1.
func ExampleBinaryLoss() {
	logits, _ := tensor.FromSlice([]float64{8, -8, 8, -8}, 4)
	target, _ := tensor.FromSlice([]float64{1, 0, 1, 0}, 4)

	loss, _ := dice.NewBinaryLoss(dice.DefaultOptions())
	v, err := loss.Forward(logits, target)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("loss=%.4f\n", v)
	// Output:
	// loss=-0.9997
}

// ExampleMultiClassLoss demonstrates the per-class vector with
// ReduceNone: the correctly predicted class scores −1, the rest 0.
func ExampleMultiClassLoss() {
	logits, _ := tensor.FromSlice([]float64{-100, 100, -100}, 1, 3)
	target, _ := tensor.FromSlice([]float64{1}, 1)

	opts := dice.DefaultOptions()
	opts.Reduction = dice.ReduceNone
	loss, _ := dice.NewMultiClassLoss(opts)

	perClass, err := loss.Forward(logits, target)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("per-class=[%.1f %.1f %.1f]\n", perClass[0], perClass[1], perClass[2])
	// Output:
	// per-class=[-0.0 -1.0 -0.0]
}
