package bencode

import (
	"bytes"
	"sort"
	"strconv"
)

// Encode serializes v into its canonical bencode form. Dictionary keys are
// emitted in ascending byte order regardless of the order they were built
// or decoded in, so any two structurally equal values encode identically.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindInteger:
		buf.WriteByte('i')
		buf.WriteString(strconv.FormatInt(v.num, 10))
		buf.WriteByte('e')
	case KindString:
		writeBytes(buf, v.raw)
	case KindList:
		buf.WriteByte('l')
		for _, item := range v.items {
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('e')
	case KindDict:
		buf.WriteByte('d')
		for _, p := range sortedPairs(v.pairs) {
			writeBytes(buf, p.Key)
			if err := encodeValue(buf, p.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('e')
	default:
		return ErrInvalidValue
	}
	return nil
}

func writeBytes(buf *bytes.Buffer, raw []byte) {
	buf.WriteString(strconv.Itoa(len(raw)))
	buf.WriteByte(':')
	buf.Write(raw)
}

func sortedPairs(pairs []Pair) []Pair {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})
	return sorted
}
