// Package sequence models the arrangement of a day board: the ordered Collection of
// orders and the sparse Assignments of ranks typed in numeric mode.
//
// Collection mutations are pure and always yield a permutation of the input, which
// lets editing sessions keep old values as baselines without copying.
package sequence
