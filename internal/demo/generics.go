package demo

import (
	"context"
	"fmt"

	"github.com/marcodamonte/features/internal/box"
)

func demoGenerics(_ context.Context, env *Env) {
	fruitBoxes := []box.FruitBox{box.NewFruitBox("Apple"), box.NewFruitBox("Banana")}
	carBoxes := []box.CarBox{box.NewCarBox(123), box.NewCarBox(456)}

	// Producer side: any slice whose elements can hand out a value.
	box.PrintValues[string](env.Out, fruitBoxes)
	box.PrintValues[int](env.Out, carBoxes)

	// Consumer side: anything that accepts an int, including a wider list.
	var ints box.List[int]
	box.AddTo(env.Out, &ints)

	var anything box.List[any]
	anything.Add("seed")
	box.AddTo(env.Out, box.Widen(&anything, box.AsAny[int]))

	fmt.Fprintln(env.Out, "  ints:", ints.String(), " anything:", anything.String())
}
