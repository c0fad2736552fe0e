// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer with overwrite-on-full semantics.
// A Buffer of size N owns N slots allocated once at construction and two
// modular cursors; one slot always stays free so that head == tail means
// empty and head == tail+1 means full. Capacity is therefore N-1.
//
// Pushing into a full buffer evicts the element at the opposite end.
// Buffers are not safe for concurrent use and must not be copied.
package ring
