// Package display renders sequences for humans.
//
// Each element is written on its own line as "index => value", indices
// start at 0, and the block is bracketed by separator lines. Display only
// consumes finished sequences; nothing in package seq depends on it.
package display
