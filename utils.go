package planeclip

// Shared numeric constants. All tolerances are fixed; no dynamic
// adaptation is performed.

const (
	// Scale converts real coordinates into the fixed-precision integer
	// domain required by the boolean engine. At 1e6 an architectural
	// model in millimetres keeps micrometre resolution while staying far
	// inside the engine's ±2^62 coordinate range.
	Scale = 1e6

	// DefaultDedupeTolerance is the distance below which consecutive
	// loop vertices are considered the same point.
	DefaultDedupeTolerance = 1e-6
)

const (
	sqrtHalf = 0.7071067811865476
	// tolerance bounds the allowed deviation from unit length and
	// perpendicularity when validating a frame basis.
	tolerance = 1e-9
	// epsilonParallel is the line-line intersection determinant below
	// which two offset edges are treated as parallel.
	epsilonParallel = 1e-9
	// collinearDot is the |cosine| above which a loop vertex does not
	// meaningfully change direction and is dropped.
	collinearDot = 0.9999
)
