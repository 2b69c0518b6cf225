package ragtimer_test

import (
	"context"
	"math/rand"
	"os"
	"strings"

	"github.com/ragtimer/ragtimer/dependency"
	"github.com/ragtimer/ragtimer/explicit"
	"github.com/ragtimer/ragtimer/model"
	"github.com/ragtimer/ragtimer/prism"
	"github.com/ragtimer/ragtimer/trace"
)

// Example_producerPipeline walks the full pipeline on a two-variable
// producer: one unit of A converts to B at rate 2.0, and the single
// terminating trace yields a three-state explicit CTMC whose only emitted
// transition is the producing step itself (the initial state's absorbing
// placeholder has residual zero and is omitted).
func Example_producerPipeline() {
	src := `
species A init 1
species B init 0
reaction r
consume A
produce B
rate 2.0
target B = 1
`
	m, err := model.Parse(strings.NewReader(src))
	if err != nil {
		panic(err)
	}

	dg, err := dependency.Build(m)
	if err != nil {
		panic(err)
	}

	c := explicit.New(m)
	e := trace.NewEngine(m, c, trace.WithRNG(rand.New(rand.NewSource(1))))
	if _, err := e.GenerateRewardLearningTraces(context.Background(), 1, dg); err != nil {
		panic(err)
	}
	if err := c.SealAbsorbing(); err != nil {
		panic(err)
	}

	if err := prism.WriteTRA(os.Stdout, c); err != nil {
		panic(err)
	}
	// Output:
	// 3 1
	// 1 2 2
}
