// Command csvtrain trains a network on a CSV dataset and reports the
// mean squared error on a held-out split.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/perceptron-go/perceptron/internal/loss"
	"github.com/perceptron-go/perceptron/internal/net"
)

func main() {
	var (
		file      = flag.String("file", "", "path to the CSV file")
		targets   = flag.String("targets", "", "comma-separated target column indices")
		hasHeader = flag.Bool("header", true, "skip the first CSV line")
		hidden    = flag.Int("hidden", 8, "hidden layer size")
		rate      = flag.Float64("rate", net.DefaultLearningRate, "learning rate")
		steps     = flag.Int("steps", 100000, "number of training steps")
		split     = flag.Float64("split", 0.8, "train/test split ratio")
	)
	flag.Parse()

	if *file == "" || *targets == "" {
		flag.Usage()
		os.Exit(2)
	}

	targetCols, err := parseCols(*targets)
	if err != nil {
		slog.Error("invalid -targets", "error", err)
		os.Exit(2)
	}

	set, err := net.LoadCSV(*file, targetCols, *hasHeader)
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	set.Normalize()
	trainSet, testSet := set.Split(*split)
	if len(trainSet) == 0 || len(testSet) == 0 {
		slog.Error("split produced an empty set", "train", len(trainSet), "test", len(testSet))
		os.Exit(1)
	}

	inputSize := len(trainSet[0].Inputs)
	outputSize := len(trainSet[0].Targets)

	network, err := net.New(inputSize, *hidden, outputSize, *rate)
	if err != nil {
		slog.Error("failed to create network", "error", err)
		os.Exit(1)
	}
	network.AddCallback(net.Logger{Interval: *steps / 10})

	slog.Info("training", "samples", len(trainSet), "architecture",
		fmt.Sprintf("%d-%d-%d", inputSize, *hidden, outputSize), "steps", *steps)

	if err := network.Train(trainSet, *steps, nil); err != nil {
		slog.Error("training failed", "error", err)
		os.Exit(1)
	}

	var total float64
	for _, item := range testSet {
		pred, err := network.Query(item.Inputs)
		if err != nil {
			slog.Error("query failed", "error", err)
			os.Exit(1)
		}
		total += loss.MSE{}.Forward(pred, item.Targets)
	}
	slog.Info("evaluation", "test_samples", len(testSet), "mse", total/float64(len(testSet)))
}

func parseCols(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	cols := make([]int, 0, len(parts))
	for _, p := range parts {
		col, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
