package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/perceptron-go/perceptron/internal/net"
	"github.com/perceptron-go/perceptron/internal/sample"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	// XOR cannot be solved by a single-layer perceptron but can be
	// solved with one hidden layer.
	in := 2
	hidden := 4
	out := 1
	lr := 0.5

	fmt.Printf("Network architecture: %d-%d-%d\n", in, hidden, out)
	fmt.Printf("Activation: sigmoid, learning rate: %.2f\n", lr)

	network, err := net.New(in, hidden, out, lr)
	if err != nil {
		slog.Error("failed to create network", "error", err)
		os.Exit(1)
	}
	network.SetSampler(sample.NewSeeded(42))
	network.AddCallback(net.Logger{Interval: 5000})

	set := net.TrainSet{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}

	// 50000 online steps, each on one randomly drawn item.
	if err := network.Train(set, 50000, nil); err != nil {
		slog.Error("training failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("\nTesting trained network:")
	for _, item := range set {
		pred, err := network.Query(item.Inputs)
		if err != nil {
			slog.Error("query failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n",
			item.Inputs, pred[0], item.Targets[0])
	}
}
