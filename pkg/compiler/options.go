// Package compiler orchestrates the front-end pipeline over a set of
// source files: lex and parse per file, then one typechecking pass across
// every program.
package compiler

import "runtime"

// Options controls a front-end run.
type Options struct {
	// Jobs is the maximum number of files lexed and parsed concurrently.
	// 0 or negative means one worker per CPU.
	Jobs int
}

// effectiveJobs clamps the worker count to something sensible for n files.
func (o Options) effectiveJobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	if jobs > files {
		jobs = files
	}

	if jobs < 1 {
		jobs = 1
	}

	return jobs
}
