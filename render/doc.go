// Package render draws category-indexed data series as stair-step plots.
//
// The renderer itself is surface-agnostic: it emits line segments and
// labels through the Canvas interface and leaves coordinate mapping to
// the axis types, so the same pass logic serves the interactive viewer
// and the static exporters.
package render
