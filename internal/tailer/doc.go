// Package tailer implements the log-following engine: waiting for a log
// file that may not exist yet, seeking to a bounded tail window once it
// does, and streaming appended lines until the file goes quiet for too
// long.
//
// All waiting is plain sleep-polling at a fixed one-second interval, so
// observed latency is bounded by that interval. Two independent timeout
// policies end a session: the appearance timeout (file never created)
// and the stall timeout (file stopped growing). Reaching the current end
// of file is never terminal; more output may still be appended.
package tailer
