// Package encryption runs one-time-pad encryption and decryption over files.
//
// It derives output and pad paths, writes outputs atomically through
// temporary files and processes many files concurrently. The byte level
// transform lives in package otp.
package encryption
