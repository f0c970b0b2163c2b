package easyecies

import "runtime"

// PlaintextLength returns plain text length for the given encrypted message length.
// The message is assumed to be in the native format produced by Encrypt.
func PlaintextLength(messageLength int) int {
	if messageLength < Overhead {
		return 0
	}
	return messageLength - Overhead
}

// padWithZeros left-pads b to the given length.
func padWithZeros(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}
	padded := make([]byte, length)
	copy(padded[length-len(b):], b)
	return padded
}

// zeroize overwrites buf. runtime.KeepAlive keeps the stores from being
// eliminated, see golang/go#33325.
func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
