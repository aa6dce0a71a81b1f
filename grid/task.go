package grid

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pair is one training example: an input grid and the expected output.
type Pair struct {
	Input  *Grid
	Output *Grid
}

// Task is an ordered set of training pairs plus the test grids to
// repair. Tasks are read-only once constructed.
type Task struct {
	Train []Pair
	Test  []*Grid
}

// jsonPair mirrors one element of the "train" array.
type jsonPair struct {
	Input  [][]int `json:"input"`
	Output [][]int `json:"output"`
}

// jsonTask mirrors the on-disk task document. Test entries appear
// either as {"input": grid} objects or as bare grids, so they are
// decoded in a second pass.
type jsonTask struct {
	Train []jsonPair        `json:"train"`
	Test  []json.RawMessage `json:"test"`
}

// ParseTask decodes a task document of the form
//
//	{"train": [{"input": [[...]], "output": [[...]]}, ...],
//	 "test":  [{"input": [[...]]}, ...]}
//
// Bare grids are also accepted as test entries.
// Returns ErrBadTaskJSON for undecodable data, ErrEmptyTask when
// either section is missing, and grid construction errors verbatim.
func ParseTask(data []byte) (*Task, error) {
	var doc jsonTask
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTaskJSON, err)
	}
	if len(doc.Train) == 0 || len(doc.Test) == 0 {
		return nil, ErrEmptyTask
	}

	task := &Task{
		Train: make([]Pair, 0, len(doc.Train)),
		Test:  make([]*Grid, 0, len(doc.Test)),
	}
	for _, p := range doc.Train {
		in, err := New(p.Input)
		if err != nil {
			return nil, err
		}
		out, err := New(p.Output)
		if err != nil {
			return nil, err
		}
		task.Train = append(task.Train, Pair{Input: in, Output: out})
	}
	for _, raw := range doc.Test {
		values, err := decodeTestEntry(raw)
		if err != nil {
			return nil, err
		}
		g, err := New(values)
		if err != nil {
			return nil, err
		}
		task.Test = append(task.Test, g)
	}

	return task, nil
}

// decodeTestEntry accepts either {"input": grid} or a bare grid.
func decodeTestEntry(raw json.RawMessage) ([][]int, error) {
	var wrapped struct {
		Input [][]int `json:"input"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Input != nil {
		return wrapped.Input, nil
	}
	var bare [][]int
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTaskJSON, err)
	}

	return bare, nil
}

// LoadTask reads and parses a task document from disk.
func LoadTask(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseTask(data)
}
