// Package demo runs the seqkit demonstration: labeled sections that apply
// the seq operators to two sample lists and render each result with
// package display.
//
// A run is fail-fast. The first section whose operator returns an error
// aborts the run with a SECTION_FAILED error wrapping the operator's error.
package demo
