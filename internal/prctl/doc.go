// Package prctl wraps the Linux tagged-address control interface.
//
// The kernel keeps one control word per thread. Set applies the new word to
// every thread of the process so that goroutines observe the same fault mode
// regardless of the thread they are scheduled on. Get reads the word of the
// calling thread only.
package prctl
