// Package otp implements one-time-pad encryption over byte streams.
//
// Data is processed in 8-byte blocks. A pad block is XORed word-wise with the
// matching data block; a trailing partial block transfers only the remaining
// bytes. Pad and cipher output are raw bytes in stream order, with no header.
//
// The package never opens, closes or names files, and never logs.
package otp
