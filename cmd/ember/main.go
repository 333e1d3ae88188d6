// Package main provides the Ember ML Framework CLI.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ember-ml/ember/nn"
	"github.com/ember-ml/ember/optim"
	"github.com/ember-ml/ember/scalar"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Ember ML Framework %s\n", version)
			return
		case "train":
			train(os.Args[2:])
			return
		}
	}

	fmt.Println("Ember ML Framework - Scalar Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train the demo network on the four-sample dataset")
}

// train fits a 3→4→4→1 tanh network to the canonical four-sample dataset
// with mean-squared loss and plain gradient descent.
func train(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	steps := fs.Int("steps", 400, "number of gradient-descent steps")
	lr := fs.Float64("lr", 0.1, "learning rate")
	seed := fs.Int64("seed", 42, "random seed for parameter initialization")
	every := fs.Int("log-every", 20, "print the loss every N steps")
	_ = fs.Parse(args)

	xs := [][]float64{
		{2, 3, -1},
		{3, -1, 0.5},
		{0.5, 1, 1},
		{1, 1, -1},
	}
	ys := []float64{1, -1, -1, 1}

	rng := rand.New(rand.NewSource(*seed))
	net := nn.NewMLP(3, []int{4, 4, 1}, rng)
	sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: *lr})

	targets := make([]*scalar.Scalar, len(ys))
	for i, y := range ys {
		targets[i] = scalar.New(y)
	}

	for step := 0; step < *steps; step++ {
		preds := make([]*scalar.Scalar, len(xs))
		for i, x := range xs {
			preds[i] = net.ForwardFloats(x)[0]
		}
		loss := nn.MSELoss(preds, targets)

		sgd.ZeroGrad()
		loss.Backward()
		sgd.Step()

		if step%*every == 0 || step == *steps-1 {
			fmt.Printf("step %3d  loss %.6f\n", step, loss.Value)
		}
	}

	fmt.Println("\npredictions:")
	for i, x := range xs {
		out := net.ForwardFloats(x)
		fmt.Printf("  %v -> % .4f (target % g)\n", x, out[0].Value, ys[i])
	}
}
