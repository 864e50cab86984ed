package otp

import "encoding/binary"

// BlockSize is the number of bytes handled per step.
const BlockSize = 8

// Block holds one step of pad, plain or cipher bytes.
//
// The word view is little-endian: byte 0 is the least significant byte of Word.
// Files only ever see the byte view, so pad and cipher files are portable.
type Block [BlockSize]byte

// BlockFromWord returns the block whose little-endian word view is w.
func BlockFromWord(w uint64) Block {
	var b Block

	binary.LittleEndian.PutUint64(b[:], w)

	return b
}

// Word returns the little-endian word view of the block.
func (b Block) Word() uint64 {
	return binary.LittleEndian.Uint64(b[:])
}

// XOR returns b XOR other.
func (b Block) XOR(other Block) Block {
	return BlockFromWord(b.Word() ^ other.Word())
}
