// Package equation implements the forward, loss, backward and update
// equations of softmax regression on arena-backed matrices.
//
// One training step over a batch X (N×F) with weights W (F×C), biases
// b (1×C) and integer labels y (length N, values in [0, C)):
//
//	Z  = X·W + b          (b broadcast over rows)
//	P  = softmax(Z)       (row-wise, max-shifted)
//	L  = mean(-ln max(P[i,y_i], Epsilon))
//	dZ = (P - onehot(y)) / N
//	dW = Xᵀ·dZ,  db = Σ_rows dZ
//	W -= lr·dW,  b -= lr·db
//
// Every intermediate is a fresh allocation from the arena passed in; nothing
// is reclaimed inside a step. Callers bound memory with arena.Mark/Restore
// around steps (the model package does this for you).
//
// Errors are the matrix sentinels (ErrDimensionMismatch, ErrInvalidStorage,
// ErrInvalidLabel). TrainStep prefixes them with the failing stage name and
// leaves W and b untouched unless the update stage is reached.
package equation
