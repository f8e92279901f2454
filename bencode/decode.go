package bencode

import "strconv"

// MaxDepth bounds list/dictionary nesting. The format itself has no limit;
// the cap keeps adversarial input from exhausting the stack.
const MaxDepth = 2048

// Decode parses data as exactly one bencode value. Input that stops short
// fails with ErrUnexpectedEOF, input that continues past the first value
// fails with ErrTrailingData, and every error reports the offset where
// parsing stopped.
func Decode(data []byte) (Value, error) {
	d := decoder{data: data}
	v, err := d.decodeValue()
	if err != nil {
		return Value{}, err
	}
	if d.pos != len(d.data) {
		return Value{}, d.failAt(ErrTrailingData, d.pos)
	}
	return v, nil
}

type decoder struct {
	data  []byte
	pos   int
	depth int
}

func (d *decoder) failAt(cause error, offset int) error {
	return &DecodeError{Offset: offset, err: cause}
}

func (d *decoder) decodeValue() (Value, error) {
	if d.pos >= len(d.data) {
		return Value{}, d.failAt(ErrUnexpectedEOF, d.pos)
	}
	switch c := d.data[d.pos]; {
	case c == 'i':
		return d.decodeInteger()
	case c == 'l':
		return d.decodeList()
	case c == 'd':
		return d.decodeDict()
	case isDigit(c):
		return d.decodeString()
	default:
		return Value{}, d.failAt(ErrUnexpectedToken, d.pos)
	}
}

// decodeInteger parses i<digits>e. A single leading '-' is allowed, "-0" is
// not, and no literal other than "0" may start with a zero.
func (d *decoder) decodeInteger() (Value, error) {
	start := d.pos
	d.pos++ // 'i'
	if d.pos < len(d.data) && d.data[d.pos] == '-' {
		d.pos++
	}
	digits := d.pos
	for d.pos < len(d.data) && isDigit(d.data[d.pos]) {
		d.pos++
	}
	if d.pos >= len(d.data) {
		return Value{}, d.failAt(ErrUnexpectedEOF, d.pos)
	}
	if d.data[d.pos] != 'e' || d.pos == digits {
		return Value{}, d.failAt(ErrMalformedInteger, start)
	}
	lit := string(d.data[digits:d.pos])
	negative := digits > start+1
	if lit[0] == '0' && (negative || len(lit) > 1) {
		return Value{}, d.failAt(ErrMalformedInteger, start)
	}
	if negative {
		lit = "-" + lit
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Value{}, d.failAt(ErrIntegerOutOfRange, start)
	}
	d.pos++ // 'e'
	return Integer(n), nil
}

// decodeString parses <length>:<raw bytes>. The length is decimal with no
// leading zero (except "0" itself), and exactly length bytes must remain.
// The payload is copied so the result does not alias the caller's buffer.
func (d *decoder) decodeString() (Value, error) {
	start := d.pos
	for d.pos < len(d.data) && isDigit(d.data[d.pos]) {
		d.pos++
	}
	if d.pos >= len(d.data) {
		return Value{}, d.failAt(ErrUnexpectedEOF, d.pos)
	}
	if d.data[d.pos] != ':' {
		return Value{}, d.failAt(ErrMalformedString, start)
	}
	lit := string(d.data[start:d.pos])
	if lit[0] == '0' && len(lit) > 1 {
		return Value{}, d.failAt(ErrMalformedString, start)
	}
	length, err := strconv.Atoi(lit)
	if err != nil {
		return Value{}, d.failAt(ErrMalformedString, start)
	}
	d.pos++ // ':'
	if length > len(d.data)-d.pos {
		return Value{}, d.failAt(ErrMalformedString, start)
	}
	raw := make([]byte, length)
	copy(raw, d.data[d.pos:d.pos+length])
	d.pos += length
	return String(raw), nil
}

func (d *decoder) decodeList() (Value, error) {
	if err := d.push(); err != nil {
		return Value{}, err
	}
	defer d.pop()

	d.pos++ // 'l'
	var items []Value
	for {
		if d.pos >= len(d.data) {
			return Value{}, d.failAt(ErrUnexpectedEOF, d.pos)
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return Value{kind: KindList, items: items}, nil
		}
		item, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// decodeDict parses d<key><value>e sequences. Keys must be byte strings and
// unique. Key order is accepted as-is; canonical ordering is the encoder's job.
func (d *decoder) decodeDict() (Value, error) {
	if err := d.push(); err != nil {
		return Value{}, err
	}
	defer d.pop()

	d.pos++ // 'd'
	var pairs []Pair
	seen := make(map[string]struct{})
	for {
		if d.pos >= len(d.data) {
			return Value{}, d.failAt(ErrUnexpectedEOF, d.pos)
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return Value{kind: KindDict, pairs: pairs}, nil
		}
		keyStart := d.pos
		if !isDigit(d.data[d.pos]) {
			return Value{}, d.failAt(ErrMalformedDictionary, keyStart)
		}
		key, err := d.decodeString()
		if err != nil {
			return Value{}, err
		}
		kb, _ := key.Bytes()
		if _, dup := seen[string(kb)]; dup {
			return Value{}, d.failAt(ErrDuplicateKey, keyStart)
		}
		seen[string(kb)] = struct{}{}
		if d.pos < len(d.data) && d.data[d.pos] == 'e' {
			// key with no value
			return Value{}, d.failAt(ErrMalformedDictionary, keyStart)
		}
		val, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: kb, Value: val})
	}
}

func (d *decoder) push() error {
	d.depth++
	if d.depth > MaxDepth {
		return d.failAt(ErrNestingTooDeep, d.pos)
	}
	return nil
}

func (d *decoder) pop() {
	d.depth--
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
