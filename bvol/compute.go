// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"log/slog"

	"cogentcore.org/bounds/parallel"
	"cogentcore.org/core/base/errors"
)

// ComputeAll computes the bounds of all tasks and returns the results
// of those that succeeded, in no particular order. When there is more
// than one task and the pool has more than one worker, the tasks are
// spread over the pool; otherwise they run in order on the calling
// goroutine. Failed tasks are logged and dropped. Workers only read
// the task snapshots and write their own results.
func ComputeAll(pool parallel.Pool, tasks []*Task) []Result {
	results, _ := computeAll(pool, tasks, Logger())
	return results
}

// computeAll is [ComputeAll] logging to log. It also returns whether
// the pool was used.
func computeAll(pool parallel.Pool, tasks []*Task, log *slog.Logger) ([]Result, bool) {
	if pool != nil && len(tasks) > 1 && pool.Workers() > 1 {
		results, err := parallel.MapReduce(pool, len(tasks), func(i int) (Result, bool) {
			return computeTask(tasks[i], log)
		})
		if err != nil {
			log.Warn("bvol: compute pool failed", "tasks", len(tasks), "computed", len(results), "err", err)
		}
		return results, true
	}
	var results []Result
	for _, t := range tasks {
		if r, ok := computeTask(t, log); ok {
			results = append(results, r)
		}
	}
	return results, false
}

func computeTask(t *Task, log *slog.Logger) (Result, bool) {
	b, err := t.compute()
	if err != nil {
		logComputeError(log, t, err)
		return Result{}, false
	}
	return Result{Task: t, Bounds: b}, true
}

// logComputeError logs a failed computation; empty geometry is
// expected and only logged at debug level.
func logComputeError(log *slog.Logger, t *Task, err error) {
	if errors.Is(err, ErrEmpty) {
		log.Debug("bvol: no vertices to bound", "node", nodeName(t), "attribute", t.Position.Name)
		return
	}
	log.Warn("bvol: bounds not computed", "node", nodeName(t), "attribute", t.Position.Name, "err", err)
}

// nodeName returns a printable name for the node of the task.
func nodeName(t *Task) any {
	if t.Node == nil {
		return "<none>"
	}
	return t.Node
}
