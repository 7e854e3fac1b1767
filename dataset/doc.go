// Package dataset holds the labeled batch fed to training and a deterministic
// generator of linearly separable data for demos and tests.
//
// A Dataset is read-only to the training core: Train and Infer never write to
// the batch or the labels.
package dataset
