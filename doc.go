// Package lna is a small, allocation-free numerical kernel for training and
// running a linear classifier (softmax regression) inside one fixed buffer.
//
// 🚀 What is lna?
//
//	A set of layered packages for memory-constrained targets, where the
//	caller hands over a []byte once and nothing else touches the heap on
//	the hot path:
//		• arena:    bump allocator over caller memory, Mark/Restore checkpoints
//		• matrix:   row-major float32 matrices living inside an arena
//		• equation: softmax, cross-entropy, backward pass and train step
//		• dataset:  labeled batches and a deterministic separable generator
//		• model:    config, train / infer / predict with an arena reset policy
//
// ✨ Why lna?
//
//   - Predictable memory: peak usage is the dataset, the parameters and one
//     training step of scratch
//   - Fail-fast: every operation validates shapes, labels and storage
//     before it allocates or writes, and returns sentinel errors
//   - Dangling detection: a matrix whose arena was rewound below it is
//     reported as ErrDanglingMatrix instead of reading recycled bytes
//   - Pure Go: no cgo
//
// Layering (leaf → root):
//
//	arena/   : fixed-capacity allocator, regions, marks, liveness
//	matrix/  : Matrix type, allocating and in-place algebra, validators
//	equation/: forward/backward equations of softmax regression
//	dataset/ : Dataset container, Separable generator
//	model/   : Config, Model, Train/Infer/Predict/Evaluate, options
//
// Quick start:
//
//	a, _ := arena.New(make([]byte, 64<<10))
//	ds, _ := dataset.Separable(a, dataset.SeparableSpec{Samples: 60, Features: 4, Classes: 3})
//	cfg, _ := model.NewConfig(4, 3, a)
//	m, _ := model.New(cfg)
//	rep, _ := m.Train(ds, 200, 0.1)
//	pred, _ := m.Predict(ds.Batch)
//
// See examples/softmax_regression for a runnable program.
package lna
