package main

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrEmptyGeometry means no usable segments survived extraction and
	// filtering; there is nothing to chain.
	ErrEmptyGeometry = errors.New("no geometry: drawing produced no usable segments")

	// ErrNoPaths means chaining produced no contours, usually because every
	// candidate fell outside the chain tolerance. Relax the tolerances and
	// rebuild.
	ErrNoPaths = errors.New("no contours: chaining produced no paths")
)

// BuildResult is the immutable output of one build: the move list, the
// serialized command stream, and the playback model. Contours are an
// intermediate and are not retained.
type BuildResult struct {
	moves    []Move
	commands []Command
	playback *Playback

	segmentCount int
	pathCount    int
	passCount    int
}

type Job struct {
	options  *Options
	entities []Entity
	result   *BuildResult
}

func NewJob(opt *Options, entities []Entity) *Job {
	return &Job{
		options:  opt,
		entities: entities,
	}
}

// Build runs the whole pipeline in one synchronous pass. On error no
// partial result is kept: the previous successful result, if any, stays
// authoritative. There is nothing to retry internally; every failure here
// is a deterministic function of the input, so only changed options can
// change the outcome.
func (j *Job) Build() error {
	opt := j.options

	segments := ExtractSegments(j.entities, opt)
	if len(segments) == 0 {
		return ErrEmptyGeometry
	}

	paths := ChainSegments(segments, opt)
	if len(paths) == 0 {
		return ErrNoPaths
	}

	paths = PostProcess(paths, opt)
	if len(paths) == 0 {
		return ErrNoPaths
	}

	moves := PlanMoves(paths, opt)

	result := BuildResult{
		moves:    moves,
		commands: EmitCommands(moves, opt),
		playback: BuildPlayback(moves),

		segmentCount: len(segments),
		pathCount:    len(paths),
		passCount:    len(PassDepths(opt.depth, opt.stepDown)),
	}
	j.result = &result

	if !opt.quiet {
		cut, rapid := result.playback.Lengths()
		fmt.Fprintf(os.Stderr, "%d segments in %d contours, %d passes.\n",
			result.segmentCount, result.pathCount, result.passCount)
		fmt.Fprintf(os.Stderr, "%d commands. Cutting %.3f in, rapids %.3f in.\n",
			len(result.commands), cut, rapid)
	}

	return nil
}

func (j *Job) Gcode() string {
	if j.result == nil {
		return ""
	}
	return CommandText(j.result.commands)
}
