package formatter

import "unicode/utf8"

// buffer appends into a caller-owned byte slice without ever growing it.
// Bytes that do not fit in cap(buf) are dropped and full is set.
type buffer struct {
	buf  []byte
	full bool
}

func (b *buffer) free() int {
	return cap(b.buf) - len(b.buf)
}

func (b *buffer) writeString(s string) {
	if b.full {
		return
	}
	if free := b.free(); len(s) > free {
		s = s[:free]
		b.full = true
	}
	b.buf = append(b.buf, s...)
}

func (b *buffer) write(p []byte) {
	if b.full {
		return
	}
	if free := b.free(); len(p) > free {
		p = p[:free]
		b.full = true
	}
	b.buf = append(b.buf, p...)
}

func (b *buffer) writeByte(c byte) {
	if b.full {
		return
	}
	if b.free() == 0 {
		b.full = true
		return
	}
	b.buf = append(b.buf, c)
}

func (b *buffer) writeRune(r rune) {
	var tmp [utf8.UTFMax]byte
	b.write(utf8.AppendRune(tmp[:0], r))
}

// writePadding writes n copies of c.
func (b *buffer) writePadding(n int, c byte) {
	for ; n > 0 && !b.full; n-- {
		b.writeByte(c)
	}
}

// Append copies s to the end of dst without growing dst past its capacity.
// complete is false when s had to be cut short.
func Append(dst []byte, s string) (out []byte, complete bool) {
	b := buffer{buf: dst}
	b.writeString(s)
	return b.buf, !b.full
}

// AppendInt appends the decimal form of v to dst within its capacity.
func AppendInt(dst []byte, v int) (out []byte, complete bool) {
	b := buffer{buf: dst}
	writeDecimal(&b, v)
	return b.buf, !b.full
}

func writeDecimal(b *buffer, v int) {
	var tmp [20]byte
	u := uint64(v)
	if v < 0 {
		b.writeByte('-')
		u = uint64(-v)
	}
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	b.write(tmp[i:])
}

// writeZeroPadded writes v in decimal using at least width digits.
func writeZeroPadded(b *buffer, v, width int) {
	var tmp [20]byte
	i := len(tmp)
	for v > 0 || width > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
		width--
	}
	b.write(tmp[i:])
}
