package simple

import "fmt"

// Generator hands out sequential booking references such as "BK-0001".
type Generator struct {
	prefix  string
	counter int
}

func New(prefix string) *Generator {
	//nolint:exhaustruct
	return &Generator{prefix: prefix}
}

func (g *Generator) NextID() string {
	g.counter++

	return fmt.Sprintf("%s-%04d", g.prefix, g.counter)
}
