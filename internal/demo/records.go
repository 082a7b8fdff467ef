package demo

import (
	"context"
	"fmt"
)

// Person is a plain value type: comparable with ==, copied on assignment.
type Person struct {
	Name string
	Age  int
}

func (p Person) String() string { return fmt.Sprintf("Person[name=%s, age=%d]", p.Name, p.Age) }

func demoRecords(_ context.Context, env *Env) {
	person := Person{Name: "Alice", Age: 30}
	fmt.Fprintf(env.Out, "Person: %s, Age: %d\n", person.Name, person.Age)
	fmt.Fprintln(env.Out, "  String():", person)

	twin := Person{Name: "Alice", Age: 30}
	fmt.Fprintln(env.Out, "  equal by value:", person == twin)
}
