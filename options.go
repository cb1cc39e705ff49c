package main

// Options is the full configuration surface of a build. Values are
// caller-validated: the engine trusts the ranges given and clamps nothing.
type Options struct {
	inputPath   string
	outputPath  string
	previewPath string

	comment      string
	toolDiameter float64

	safeZ    float64
	depth    float64
	stepDown float64
	xyFeed   float64
	zFeed    float64

	tolerance        float64
	snapGrid         float64
	angularTolerance float64

	precision int

	origin    OriginMode
	chainMode ChainMode

	quiet bool
}

func ParseOriginMode(name string) (OriginMode, bool) {
	switch name {
	case "none":
		return OriginNone, true
	case "center":
		return OriginCenter, true
	case "bottom-left":
		return OriginBottomLeft, true
	case "bottom-right":
		return OriginBottomRight, true
	case "top-left":
		return OriginTopLeft, true
	case "top-right":
		return OriginTopRight, true
	}
	return OriginNone, false
}

func ParseChainMode(name string) (ChainMode, bool) {
	switch name {
	case "exact":
		return ExactChain, true
	case "trace":
		return TracingChain, true
	}
	return ExactChain, false
}
