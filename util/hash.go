package util

import (
	"crypto/sha1"
	"encoding/hex"
)

func CalcInfoHash(b []byte) [sha1.Size]byte {
	return sha1.Sum(b)
}

func HexDigest(digest [sha1.Size]byte) string {
	return hex.EncodeToString(digest[:])
}
