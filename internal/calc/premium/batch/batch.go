package batch

import (
	"fmt"

	lapjoint "Lapjoint/internal/calc/lapjoint"
)

type Input struct {
	Items []lapjoint.Input `json:"items"`
}

type Result struct {
	Results []lapjoint.Result `json:"results"`
}

// Calculate designs every case in the list; one bad case fails the batch.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]lapjoint.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := lapjoint.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
