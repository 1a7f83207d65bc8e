// Package report names a batch of type elements and renders the result.
//
// Each element is a generation unit: a resolver error aborts that unit,
// is recorded as a diagnostic, and the batch moves on.
package report
