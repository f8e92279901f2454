// Package bencode decodes and encodes the bencode serialization format used
// by .torrent files. Values are held in a tagged union with kind-checked
// accessors. The encoder always emits the canonical form, dictionary keys in
// ascending byte order, so equal values encode to equal bytes.
package bencode

import "bytes"

// Kind identifies which of the four bencode kinds a Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dictionary"
	default:
		return "invalid"
	}
}

// Value is a single decoded bencode value. The zero Value is invalid and is
// rejected by Encode.
type Value struct {
	kind  Kind
	num   int64
	raw   []byte
	items []Value
	pairs []Pair
}

// Pair is one dictionary entry. Keys are raw byte strings; they are kept in
// source order and only sorted when encoding.
type Pair struct {
	Key   []byte
	Value Value
}

// Integer returns an integer Value.
func Integer(n int64) Value {
	return Value{kind: KindInteger, num: n}
}

// String returns a byte-string Value. The bytes are not assumed to be text.
func String(b []byte) Value {
	return Value{kind: KindString, raw: b}
}

// Text returns a byte-string Value holding the UTF-8 bytes of s.
func Text(s string) Value {
	return Value{kind: KindString, raw: []byte(s)}
}

// List returns a list Value with the given items, order preserved.
func List(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

// Dict returns a dictionary Value with the given pairs in the given order.
// Key uniqueness is the caller's responsibility here; Decode enforces it for
// parsed input.
func Dict(pairs ...Pair) Value {
	return Value{kind: KindDict, pairs: pairs}
}

// KV builds a dictionary Pair from a text key.
func KV(key string, v Value) Pair {
	return Pair{Key: []byte(key), Value: v}
}

// Kind reports which bencode kind v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns the integer payload. ok is false for non-integer values.
func (v Value) Int64() (n int64, ok bool) {
	return v.num, v.kind == KindInteger
}

// Bytes returns the byte-string payload. ok is false for non-string values.
func (v Value) Bytes() (b []byte, ok bool) {
	if v.kind != KindString {
		return nil, false
	}
	return v.raw, true
}

// Items returns the list payload. ok is false for non-list values.
func (v Value) Items() (items []Value, ok bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.items, true
}

// Pairs returns the dictionary payload in source order. ok is false for
// non-dictionary values.
func (v Value) Pairs() (pairs []Pair, ok bool) {
	if v.kind != KindDict {
		return nil, false
	}
	return v.pairs, true
}

// Lookup finds the value stored under key in a dictionary Value. ok is false
// when v is not a dictionary or the key is absent.
func (v Value) Lookup(key string) (item Value, ok bool) {
	if v.kind != KindDict {
		return Value{}, false
	}
	for _, p := range v.pairs {
		if string(p.Key) == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether two values are deeply equal. Dictionary comparison
// is order-sensitive.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.num == o.num
	case KindString:
		return bytes.Equal(v.raw, o.raw)
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(v.pairs) != len(o.pairs) {
			return false
		}
		for i := range v.pairs {
			if !bytes.Equal(v.pairs[i].Key, o.pairs[i].Key) {
				return false
			}
			if !v.pairs[i].Value.Equal(o.pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
