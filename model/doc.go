// Package model wraps the softmax regression equations into a trainable
// linear classifier whose parameters live in an arena.
//
// ✨ Key features:
//   - NewConfig validates the problem shape once; New allocates W (F×C) and
//     b (1×C) from the configured arena, zero or seeded-uniform initialised.
//   - Train runs full-batch gradient descent for a fixed number of steps and
//     reports the loss of every step.
//   - Infer returns class probabilities; Predict and Evaluate wrap inference
//     in an arena checkpoint so they leave no scratch behind.
//
// ⚙️ Memory:
//
//	Every training step allocates its intermediates from the arena. With the
//	default ResetPerStep policy, Train marks the arena on entry and restores
//	the mark after each step, so peak usage is one step's scratch regardless
//	of the step count. ResetNever leaves reclamation to the caller.
//
//	Anything allocated after Train starts and before it returns is reclaimed
//	under ResetPerStep: allocate datasets before training, never from a logger.
//
// Logging is off by default. WithLogger and WithLogEvery emit key=value
// progress lines through a standard *log.Logger.
package model
