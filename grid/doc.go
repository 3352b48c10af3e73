// Package grid models per-axis spacing for structured Cartesian grids.
//
// An Axis is either a uniform positive step (Uniform) or an explicit strictly
// increasing coordinate slice (Coords) for non-uniform grids. A Grid binds
// axes to axis indices; derivative evaluation refuses to proceed unless every
// axis a differential term references is bound and valid, signalling
// ErrInvalidGrid before any computation.
//
// Grids are validated eagerly at construction and are immutable afterwards,
// so a Grid value may be shared freely across concurrent evaluations.
package grid
