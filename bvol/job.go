// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bvol computes the bounds of the renderable entities in a
// scene once per frame, for the entities whose geometry or hierarchy
// changed since the last computation.
//
// Each frame runs in three steps: [Scan] collects one [Task] per dirty
// entity, [ComputeAll] computes their bounds, in parallel when worth
// it, and [Commit] writes the bounds back and clears the dirty state.
// [Job] drives those steps.
package bvol

//go:generate core generate

import (
	"log/slog"
	"time"

	"cogentcore.org/bounds/logx"
	"cogentcore.org/bounds/parallel"
	"cogentcore.org/bounds/scene"
)

// Stats are the counters of the last frame of a [Job].
type Stats struct {
	// Tasks is the number of entities selected for recomputation.
	Tasks int

	// Computed is the number of tasks that produced bounds.
	Computed int

	// Committed is the number of results committed by PostFrame.
	Committed int

	// Parallel is whether the pool was used.
	Parallel bool

	// Duration is the time spent in Run.
	Duration time.Duration
}

// Dropped returns the number of tasks that did not produce bounds.
func (s Stats) Dropped() int {
	return s.Tasks - s.Computed
}

// Job computes the bounds of the scene under its root, one frame at a
// time. [Job.Run] scans and computes, and [Job.PostFrame] commits; they
// must be called from the goroutine that owns the scene, and nothing
// may change the scene while Run is in progress.
type Job struct {

	// Root is the root of the scene.
	Root scene.Node

	// Config holds the job settings.
	Config Config

	pool    parallel.Pool
	logger  *slog.Logger
	results []Result
	stats   Stats
}

// Option configures a [Job].
type Option func(j *Job)

// WithConfig sets the [Config] of the job.
func WithConfig(c Config) Option {
	return func(j *Job) { j.Config = c }
}

// WithPool sets the pool used for computation, instead of one
// created from [Config.Workers].
func WithPool(p parallel.Pool) Option {
	return func(j *Job) { j.pool = p }
}

// WithLogger sets the logger of the job, instead of [Logger].
// Messages below [Config.Level] are dropped either way.
func WithLogger(l *slog.Logger) Option {
	return func(j *Job) { j.logger = l }
}

// NewJob returns a new job for the scene under root.
func NewJob(root scene.Node, opts ...Option) *Job {
	j := &Job{Root: root}
	j.Config.Defaults()
	for _, o := range opts {
		o(j)
	}
	if j.pool == nil {
		j.pool = parallel.NewPool(j.Config.Workers)
	}
	return j
}

// Pool returns the pool used for computation.
func (j *Job) Pool() parallel.Pool {
	return j.pool
}

// log returns the logger of the job at [Config.Level].
func (j *Job) log() *slog.Logger {
	l := j.logger
	if l == nil {
		l = Logger()
	}
	return logx.WithLevel(l, j.Config.Level())
}

// Run scans the scene and computes the bounds of every dirty entity,
// keeping the results for [Job.PostFrame]. Results from a previous Run
// that were never committed are discarded.
func (j *Job) Run() {
	st := time.Now()
	log := j.log()
	tasks := scan(j.Root, log)
	results, par := computeAll(j.pool, tasks, log)
	j.results = results
	j.stats = Stats{
		Tasks:    len(tasks),
		Computed: len(results),
		Parallel: par,
		Duration: time.Since(st),
	}
}

// PostFrame commits the results of the last [Job.Run] and discards them.
func (j *Job) PostFrame() {
	Commit(j.results, j.Config.Commit)
	j.stats.Committed = len(j.results)
	j.results = nil
	if j.stats.Tasks > 0 {
		j.log().Debug("bvol: frame", "tasks", j.stats.Tasks, "committed", j.stats.Committed,
			"dropped", j.stats.Dropped(), "parallel", j.stats.Parallel, "duration", j.stats.Duration)
	}
}

// Frame runs a whole frame: [Job.Run] followed by [Job.PostFrame].
func (j *Job) Frame() {
	j.Run()
	j.PostFrame()
}

// Results returns the results of the last [Job.Run] that have not
// been committed yet.
func (j *Job) Results() []Result {
	return j.results
}

// Stats returns the counters of the last frame.
func (j *Job) Stats() Stats {
	return j.stats
}
