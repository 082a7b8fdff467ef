package demo

import (
	"context"
	"fmt"

	"github.com/marcodamonte/features/internal/shapes"
)

var (
	sampleCircle    shapes.Shape = shapes.Circle{Radius: 5.0}
	sampleRectangle shapes.Shape = shapes.Rectangle{Length: 4.0, Breadth: 6.0}
)

func demoShapes(_ context.Context, env *Env) {
	shapes.Describe(env.Out, sampleCircle)
	shapes.Describe(env.Out, sampleRectangle)
}

// switchExpression returns the label so the caller decides what to do with it.
func switchExpression(s shapes.Shape) string {
	return shapes.Classify(s)
}

func demoSwitch(_ context.Context, env *Env) {
	fmt.Fprintln(env.Out, "Switch Expression Example:", switchExpression(sampleCircle))
}
