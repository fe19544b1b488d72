// Package handler provides the output side of raw logging: a writer for
// the process's standard error and the Stats counters that record what
// happened to each line.
//
// WriteToStderr issues the write system call directly (golang.org/x/sys/unix
// on unix, golang.org/x/sys/windows on Windows) instead of going through
// os.Stderr, so no buffering, locking, or allocation sits between a raw log
// call and the file descriptor. Short writes are continued, interrupted
// writes are retried a bounded number of times, and anything else is
// dropped: the writer never reports an error and never blocks indefinitely.
//
// Platforms without a raw write primitive report FullySupported() == false;
// output there is discarded while Fatal messages still end the process.
package handler
