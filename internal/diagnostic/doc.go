// Package diagnostic collects per-type warnings and errors raised while
// naming a batch of types.
//
// A failure to name one type is fatal for that type only; the batch keeps
// going and reports every failure at the end.
package diagnostic
