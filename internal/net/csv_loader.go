package net

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV loads a training set from a CSV file.
// targetCols specifies the indices of columns to be used as targets.
// All other columns are used as inputs.
// hasHeader skips the first line if true.
func LoadCSV(filename string, targetCols []int, hasHeader bool) (TrainSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}

	if len(records) <= startRow {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	numCols := len(records[0])
	isTargetCol := make(map[int]bool)
	for _, col := range targetCols {
		isTargetCol[col] = true
	}

	set := make(TrainSet, 0, len(records)-startRow)
	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, fmt.Errorf("inconsistent number of columns at row %d", i)
		}

		inputs := make([]float64, 0, numCols-len(targetCols))
		targetValues := make(map[int]float64)

		for j, valStr := range record {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
			if isTargetCol[j] {
				targetValues[j] = val
			} else {
				inputs = append(inputs, val)
			}
		}

		// Targets keep the order given in targetCols, not file order.
		targets := make([]float64, 0, len(targetCols))
		for _, col := range targetCols {
			targets = append(targets, targetValues[col])
		}

		set = append(set, TrainItem{Inputs: inputs, Targets: targets})
	}

	return set, nil
}

// Normalize performs min-max normalization on the inputs, in place.
func (s TrainSet) Normalize() {
	if len(s) == 0 {
		return
	}

	numFeatures := len(s[0].Inputs)
	min := make([]float64, numFeatures)
	max := make([]float64, numFeatures)

	for i := range min {
		min[i] = s[0].Inputs[i]
		max[i] = s[0].Inputs[i]
	}

	for _, item := range s {
		for i, val := range item.Inputs {
			if val < min[i] {
				min[i] = val
			}
			if val > max[i] {
				max[i] = val
			}
		}
	}

	for _, item := range s {
		for i := range item.Inputs {
			diff := max[i] - min[i]
			if diff != 0 {
				item.Inputs[i] = (item.Inputs[i] - min[i]) / diff
			} else {
				item.Inputs[i] = 0
			}
		}
	}
}

// Split splits the set into two based on the given ratio (0.0 to 1.0).
// Returns two sets (train, test) sharing the underlying items.
func (s TrainSet) Split(ratio float64) (TrainSet, TrainSet) {
	if ratio <= 0 {
		return TrainSet{}, s
	}
	if ratio >= 1 {
		return s, TrainSet{}
	}

	splitIdx := int(float64(len(s)) * ratio)
	return s[:splitIdx], s[splitIdx:]
}
