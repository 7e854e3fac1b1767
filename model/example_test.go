// SPDX-License-Identifier: MIT
package model_test

import (
	"fmt"

	"github.com/katalvlaran/lna/arena"
	"github.com/katalvlaran/lna/dataset"
	"github.com/katalvlaran/lna/model"
)

// ExampleModel_Train trains on two orthogonal samples and classifies them.
func ExampleModel_Train() {
	a, _ := arena.New(make([]byte, 16<<10))
	ds, _ := dataset.Separable(a, dataset.SeparableSpec{Samples: 8, Features: 2, Classes: 2, Seed: 1})

	cfg, _ := model.NewConfig(2, 2, a)
	m, _ := model.New(cfg)

	used := a.Used()
	rep, err := m.Train(ds, 50, 0.1)
	if err != nil {
		fmt.Println(err)
		return
	}
	pred, _ := m.Predict(ds.Batch)

	fmt.Println("steps:", rep.Steps)
	fmt.Println("improved:", rep.FinalLoss < rep.Losses[0])
	fmt.Println("matches labels:", fmt.Sprint(pred) == fmt.Sprint(ds.Labels))
	fmt.Println("scratch reclaimed:", a.Used() == used)
	// Output:
	// steps: 50
	// improved: true
	// matches labels: true
	// scratch reclaimed: true
}
