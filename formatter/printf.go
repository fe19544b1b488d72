package formatter

import (
	"math"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

const (
	ldigits = "0123456789abcdefx"
	udigits = "0123456789ABCDEFX"

	// maxFloatPrec keeps strconv output inside the fixed scratch space.
	maxFloatPrec = 30
)

// Appendf formats according to a printf-style format specifier and appends
// the result to dst without growing it: output that does not fit in cap(dst)
// is dropped and complete is false.
//
// The verbs follow package fmt for the types the raw path can handle without
// allocating: strings, []byte, bools, all integer and float kinds, uintptr
// and unsafe.Pointer. %i and %u are accepted as aliases of %d. Other argument
// types render as %!v(UNSUPPORTED); pass err.Error() or s.String() instead.
// Width and precision may be given as '*'. Explicit argument indexes
// (%[n]d) are not supported. Argument mistakes are reported inline the way
// fmt does (%!d(MISSING), %!d(string=x), %!(BADWIDTH), %!(EXTRA ...)).
func Appendf(dst []byte, format string, args ...any) (out []byte, complete bool) {
	p := printer{buf: buffer{buf: dst}}
	p.doPrintf(format, args)
	return p.buf.buf, !p.buf.full
}

type fmtFlags struct {
	minus       bool
	plus        bool
	space       bool
	zero        bool
	sharp       bool
	widPresent  bool
	precPresent bool
	wid         int
	prec        int
}

type printer struct {
	buf buffer
	fmtFlags
}

func (p *printer) doPrintf(format string, args []any) {
	end := len(format)
	argNum := 0
	for i := 0; i < end; {
		lasti := i
		for i < end && format[i] != '%' {
			i++
		}
		if i > lasti {
			p.buf.writeString(format[lasti:i])
		}
		if i >= end {
			break
		}
		i++ // skip %

		p.fmtFlags = fmtFlags{}
	flags:
		for ; i < end; i++ {
			switch format[i] {
			case '-':
				p.minus = true
				p.zero = false
			case '0':
				p.zero = !p.minus
			case '+':
				p.plus = true
			case ' ':
				p.space = true
			case '#':
				p.sharp = true
			default:
				break flags
			}
		}

		if i < end && format[i] == '*' {
			i++
			p.wid, p.widPresent, argNum = intFromArg(args, argNum)
			if !p.widPresent {
				p.buf.writeString("%!(BADWIDTH)")
			}
			if p.wid < 0 {
				p.wid = -p.wid
				p.minus = true
				p.zero = false
			}
		} else {
			p.wid, p.widPresent, i = parsenum(format, i, end)
		}

		if i < end && format[i] == '.' {
			i++
			if i < end && format[i] == '*' {
				i++
				p.prec, p.precPresent, argNum = intFromArg(args, argNum)
				if p.prec < 0 {
					p.prec = 0
					p.precPresent = false
				}
				if !p.precPresent {
					p.buf.writeString("%!(BADPREC)")
				}
			} else {
				p.prec, p.precPresent, i = parsenum(format, i, end)
				p.precPresent = true
			}
		}

		// C length modifiers carry no meaning for Go values.
		for i < end && isLengthModifier(format[i]) {
			i++
		}

		if i >= end {
			p.buf.writeString("%!(NOVERB)")
			break
		}

		verb, size := rune(format[i]), 1
		if verb >= utf8.RuneSelf {
			verb, size = utf8.DecodeRuneInString(format[i:])
		}
		i += size

		switch {
		case verb == '%':
			p.buf.writeByte('%')
		case argNum >= len(args):
			p.buf.writeString("%!")
			p.buf.writeRune(verb)
			p.buf.writeString("(MISSING)")
		default:
			p.printArg(args[argNum], verb)
			argNum++
		}
	}

	if argNum < len(args) {
		p.fmtFlags = fmtFlags{}
		p.buf.writeString("%!(EXTRA ")
		for i, arg := range args[argNum:] {
			if i > 0 {
				p.buf.writeString(", ")
			}
			p.printTyped(arg)
		}
		p.buf.writeByte(')')
	}
}

func isLengthModifier(c byte) bool {
	switch c {
	case 'h', 'l', 'L', 'z', 'j', 't':
		return true
	}
	return false
}

// intFromArg consumes args[argNum] as a '*' width or precision. Like fmt it
// accepts any integer kind that fits an int and rejects values beyond ±1e6.
func intFromArg(args []any, argNum int) (num int, isInt bool, newArgNum int) {
	if argNum >= len(args) {
		return 0, false, argNum
	}
	switch v := args[argNum].(type) {
	case int:
		num, isInt = v, true
	case int8:
		num, isInt = int(v), true
	case int16:
		num, isInt = int(v), true
	case int32:
		num, isInt = int(v), true
	case int64:
		num, isInt = int(v), int64(int(v)) == v
	case uint:
		num, isInt = int(v), int(v) >= 0
	case uint8:
		num, isInt = int(v), true
	case uint16:
		num, isInt = int(v), true
	case uint32:
		num, isInt = int(v), int64(v) == int64(int(v))
	case uint64:
		num, isInt = int(v), int64(v) >= 0 && uint64(int(v)) == v
	case uintptr:
		num, isInt = int(v), int64(v) >= 0 && uintptr(int(v)) == v
	}
	if !isInt || num > 1e6 || num < -1e6 {
		num, isInt = 0, false
	}
	return num, isInt, argNum + 1
}

// parsenum reads a non-negative decimal number starting at format[start].
func parsenum(format string, start, end int) (num int, isnum bool, newi int) {
	newi = start
	for newi < end && '0' <= format[newi] && format[newi] <= '9' {
		if num > 1e6 {
			return 0, false, end
		}
		num = num*10 + int(format[newi]-'0')
		isnum = true
		newi++
	}
	return
}

func (p *printer) printArg(arg any, verb rune) {
	if arg == nil {
		switch verb {
		case 'v', 's':
			p.padString("<nil>")
		default:
			p.badVerb(verb, arg)
		}
		return
	}

	switch f := arg.(type) {
	case bool:
		p.fmtBool(f, verb, arg)
	case float32:
		p.fmtFloat(float64(f), 32, verb, arg)
	case float64:
		p.fmtFloat(f, 64, verb, arg)
	case int:
		p.fmtInteger(uint64(f), true, verb, arg)
	case int8:
		p.fmtInteger(uint64(f), true, verb, arg)
	case int16:
		p.fmtInteger(uint64(f), true, verb, arg)
	case int32:
		p.fmtInteger(uint64(f), true, verb, arg)
	case int64:
		p.fmtInteger(uint64(f), true, verb, arg)
	case uint:
		p.fmtInteger(uint64(f), false, verb, arg)
	case uint8:
		p.fmtInteger(uint64(f), false, verb, arg)
	case uint16:
		p.fmtInteger(uint64(f), false, verb, arg)
	case uint32:
		p.fmtInteger(uint64(f), false, verb, arg)
	case uint64:
		p.fmtInteger(f, false, verb, arg)
	case uintptr:
		if verb == 'p' {
			p.fmtPointer(f)
			return
		}
		p.fmtInteger(uint64(f), false, verb, arg)
	case string:
		p.fmtString(f, verb, arg)
	case []byte:
		p.fmtBytes(f, verb, arg)
	case unsafe.Pointer:
		switch {
		case verb == 'p':
			p.fmtPointer(uintptr(f))
		case verb == 'v' && f == nil:
			p.padString("<nil>")
		case verb == 'v':
			p.fmtPointer(uintptr(f))
		default:
			p.badVerb(verb, arg)
		}
	default:
		p.buf.writeString("%!")
		p.buf.writeRune(verb)
		p.buf.writeString("(UNSUPPORTED)")
	}
}

// typeName mirrors the names fmt prints in error annotations.
func typeName(arg any) string {
	switch arg.(type) {
	case nil:
		return "<nil>"
	case bool:
		return "bool"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case int:
		return "int"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case uintptr:
		return "uintptr"
	case string:
		return "string"
	case []byte:
		return "[]uint8"
	case unsafe.Pointer:
		return "unsafe.Pointer"
	default:
		return "?"
	}
}

// printTyped writes "type=value", or "<nil>" for a nil argument.
func (p *printer) printTyped(arg any) {
	if arg == nil {
		p.buf.writeString("<nil>")
		return
	}
	p.buf.writeString(typeName(arg))
	p.buf.writeByte('=')
	p.printArg(arg, 'v')
}

func (p *printer) badVerb(verb rune, arg any) {
	p.fmtFlags = fmtFlags{}
	p.buf.writeString("%!")
	p.buf.writeRune(verb)
	p.buf.writeByte('(')
	p.printTyped(arg)
	p.buf.writeByte(')')
}

func (p *printer) padByte() byte {
	if p.zero {
		return '0'
	}
	return ' '
}

// pad writes b honoring width and the minus flag.
func (p *printer) pad(b []byte) {
	if !p.widPresent || p.wid == 0 {
		p.buf.write(b)
		return
	}
	width := p.wid - utf8.RuneCount(b)
	if p.minus {
		p.buf.write(b)
		p.buf.writePadding(width, ' ')
		return
	}
	p.buf.writePadding(width, p.padByte())
	p.buf.write(b)
}

func (p *printer) padString(s string) {
	if !p.widPresent || p.wid == 0 {
		p.buf.writeString(s)
		return
	}
	width := p.wid - utf8.RuneCountInString(s)
	if p.minus {
		p.buf.writeString(s)
		p.buf.writePadding(width, ' ')
		return
	}
	p.buf.writePadding(width, p.padByte())
	p.buf.writeString(s)
}

func (p *printer) fmtBool(v bool, verb rune, arg any) {
	switch verb {
	case 't', 'v':
		if v {
			p.padString("true")
		} else {
			p.padString("false")
		}
	default:
		p.badVerb(verb, arg)
	}
}

func (p *printer) fmtInteger(v uint64, isSigned bool, verb rune, arg any) {
	switch verb {
	case 'v', 'd', 'i', 'u':
		p.fmtIntegerBase(v, 10, isSigned, verb, ldigits)
	case 'b':
		p.fmtIntegerBase(v, 2, isSigned, verb, ldigits)
	case 'o', 'O':
		p.fmtIntegerBase(v, 8, isSigned, verb, ldigits)
	case 'x':
		p.fmtIntegerBase(v, 16, isSigned, verb, ldigits)
	case 'X':
		p.fmtIntegerBase(v, 16, isSigned, verb, udigits)
	case 'c':
		p.fmtC(v)
	case 'q':
		p.fmtQc(v)
	case 'U':
		p.fmtUnicode(v)
	default:
		p.badVerb(verb, arg)
	}
}

func (p *printer) fmtIntegerBase(u uint64, base uint64, isSigned bool, verb rune, digits string) {
	negative := isSigned && int64(u) < 0
	if negative {
		u = -u
	}

	var tmp [68]byte

	prec := 0
	if p.precPresent {
		prec = p.prec
		if prec == 0 && u == 0 {
			p.buf.writePadding(p.wid, ' ')
			return
		}
	} else if p.zero && p.widPresent && !p.minus {
		prec = p.wid
		if negative || p.plus || p.space {
			prec--
		}
	}
	if prec > len(tmp)-4 {
		prec = len(tmp) - 4
	}

	i := len(tmp)
	for u >= base {
		i--
		tmp[i] = digits[u%base]
		u /= base
	}
	i--
	tmp[i] = digits[u]

	for i > 0 && prec > len(tmp)-i {
		i--
		tmp[i] = '0'
	}

	if p.sharp {
		switch base {
		case 2:
			i--
			tmp[i] = 'b'
			i--
			tmp[i] = '0'
		case 8:
			if tmp[i] != '0' {
				i--
				tmp[i] = '0'
			}
		case 16:
			i--
			tmp[i] = digits[16]
			i--
			tmp[i] = '0'
		}
	}
	if verb == 'O' {
		i--
		tmp[i] = 'o'
		i--
		tmp[i] = '0'
	}

	switch {
	case negative:
		i--
		tmp[i] = '-'
	case p.plus:
		i--
		tmp[i] = '+'
	case p.space:
		i--
		tmp[i] = ' '
	}

	// Zero padding is already in tmp.
	oldZero := p.zero
	p.zero = false
	p.pad(tmp[i:])
	p.zero = oldZero
}

func (p *printer) fmtC(c uint64) {
	r := rune(c)
	if c > utf8.MaxRune {
		r = utf8.RuneError
	}
	var tmp [utf8.UTFMax]byte
	p.pad(utf8.AppendRune(tmp[:0], r))
}

func (p *printer) fmtQc(c uint64) {
	r := rune(c)
	if c > utf8.MaxRune || !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	var tmp [16]byte
	b := buffer{buf: tmp[:0]}
	b.writeByte('\'')
	writeEscapedRune(&b, r, '\'')
	b.writeByte('\'')
	p.pad(b.buf)
}

func (p *printer) fmtUnicode(u uint64) {
	var tmp [24]byte
	i := len(tmp)
	for u >= 16 {
		i--
		tmp[i] = udigits[u&0xF]
		u >>= 4
	}
	i--
	tmp[i] = udigits[u]
	for len(tmp)-i < 4 {
		i--
		tmp[i] = '0'
	}
	i--
	tmp[i] = '+'
	i--
	tmp[i] = 'U'
	p.pad(tmp[i:])
}

func (p *printer) fmtPointer(u uintptr) {
	var tmp [2 + 16]byte
	i := len(tmp)
	v := uint64(u)
	for v >= 16 {
		i--
		tmp[i] = ldigits[v&0xF]
		v >>= 4
	}
	i--
	tmp[i] = ldigits[v]
	i--
	tmp[i] = 'x'
	i--
	tmp[i] = '0'
	p.pad(tmp[i:])
}

func (p *printer) fmtFloat(v float64, size int, verb rune, arg any) {
	switch verb {
	case 'v':
		p.fmtFloatFormat(v, size, 'g', -1)
	case 'g', 'G':
		p.fmtFloatFormat(v, size, byte(verb), -1)
	case 'e', 'E', 'f':
		p.fmtFloatFormat(v, size, byte(verb), 6)
	case 'F':
		p.fmtFloatFormat(v, size, 'f', 6)
	default:
		p.badVerb(verb, arg)
	}
}

func (p *printer) fmtFloatFormat(v float64, size int, verb byte, prec int) {
	if p.precPresent {
		prec = p.prec
	}
	if prec > maxFloatPrec {
		prec = maxFloatPrec
	}
	// %f of a huge magnitude would need hundreds of digits.
	if verb == 'f' && math.Abs(v) >= 1e21 {
		verb = 'e'
	}

	var tmp [1 + 64]byte
	num := strconv.AppendFloat(tmp[:1], v, verb, prec, size)
	if num[1] == '-' || num[1] == '+' {
		num = num[1:]
	} else {
		num[0] = '+'
	}
	if p.space && num[0] == '+' && !p.plus {
		num[0] = ' '
	}

	// Infinities and NaN are never zero padded.
	if num[1] == 'I' || num[1] == 'N' {
		oldZero := p.zero
		p.zero = false
		if num[1] == 'N' && !p.space && !p.plus {
			num = num[1:]
		}
		p.pad(num)
		p.zero = oldZero
		return
	}

	if p.plus || num[0] != '+' {
		// The sign goes in front of any zero padding.
		if p.zero && !p.minus && p.widPresent && p.wid > len(num) {
			p.buf.writeByte(num[0])
			p.buf.writePadding(p.wid-len(num), '0')
			p.buf.write(num[1:])
			return
		}
		p.pad(num)
		return
	}
	p.pad(num[1:])
}

func (p *printer) fmtString(s string, verb rune, arg any) {
	switch verb {
	case 'v', 's':
		p.padString(p.truncateString(s))
	case 'q':
		p.fmtQuoted(s)
	case 'x':
		p.fmtHex(s, ldigits)
	case 'X':
		p.fmtHex(s, udigits)
	default:
		p.badVerb(verb, arg)
	}
}

func (p *printer) fmtBytes(v []byte, verb rune, arg any) {
	switch verb {
	case 'v':
		p.buf.writeByte('[')
		for i, c := range v {
			if i > 0 {
				p.buf.writeByte(' ')
			}
			writeDecimal(&p.buf, int(c))
		}
		p.buf.writeByte(']')
	case 's':
		p.padString(p.truncateString(unsafe.String(unsafe.SliceData(v), len(v))))
	case 'q':
		p.fmtQuoted(unsafe.String(unsafe.SliceData(v), len(v)))
	case 'x':
		p.fmtHex(unsafe.String(unsafe.SliceData(v), len(v)), ldigits)
	case 'X':
		p.fmtHex(unsafe.String(unsafe.SliceData(v), len(v)), udigits)
	default:
		p.badVerb(verb, arg)
	}
}

// truncateString cuts s to the precision, counted in runes.
func (p *printer) truncateString(s string) string {
	if p.precPresent {
		n := p.prec
		for i := range s {
			n--
			if n < 0 {
				return s[:i]
			}
		}
	}
	return s
}

func (p *printer) fmtHex(s string, digits string) {
	if p.precPresent && p.prec < len(s) {
		s = s[:p.prec]
	}
	if p.sharp && len(s) > 0 {
		p.buf.writeByte('0')
		p.buf.writeByte(digits[16])
	}
	for i := 0; i < len(s); i++ {
		p.buf.writeByte(digits[s[i]>>4])
		p.buf.writeByte(digits[s[i]&0xF])
	}
}

func (p *printer) fmtQuoted(s string) {
	s = p.truncateString(s)
	if !p.widPresent || p.wid == 0 {
		writeQuoted(&p.buf, s)
		return
	}
	width := p.wid - quotedLen(s)
	if p.minus {
		writeQuoted(&p.buf, s)
		p.buf.writePadding(width, ' ')
		return
	}
	p.buf.writePadding(width, p.padByte())
	writeQuoted(&p.buf, s)
}

// quotedLen returns the rune count of the quoted form of s.
func quotedLen(s string) int {
	n := 2
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size == 1:
			n += 4
		case r == '"' || r == '\\':
			n += 2
		case strconv.IsPrint(r):
			n++
		case r == '\a' || r == '\b' || r == '\f' || r == '\n' || r == '\r' || r == '\t' || r == '\v':
			n += 2
		case r < ' ' || r == 0x7f:
			n += 4
		case r < 0x10000:
			n += 6
		default:
			n += 10
		}
	}
	return n
}

func writeQuoted(b *buffer, s string) {
	b.writeByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.writeString(`\x`)
			b.writeByte(ldigits[s[i]>>4])
			b.writeByte(ldigits[s[i]&0xF])
			i++
			continue
		}
		writeEscapedRune(b, r, '"')
		i += size
	}
	b.writeByte('"')
}

// writeEscapedRune matches the escaping of strconv.Quote and strconv.QuoteRune.
func writeEscapedRune(b *buffer, r rune, quote byte) {
	if r == rune(quote) || r == '\\' {
		b.writeByte('\\')
		b.writeByte(byte(r))
		return
	}
	if strconv.IsPrint(r) {
		b.writeRune(r)
		return
	}
	switch r {
	case '\a':
		b.writeString(`\a`)
	case '\b':
		b.writeString(`\b`)
	case '\f':
		b.writeString(`\f`)
	case '\n':
		b.writeString(`\n`)
	case '\r':
		b.writeString(`\r`)
	case '\t':
		b.writeString(`\t`)
	case '\v':
		b.writeString(`\v`)
	default:
		switch {
		case r < ' ' || r == 0x7f:
			b.writeString(`\x`)
			b.writeByte(ldigits[byte(r)>>4])
			b.writeByte(ldigits[byte(r)&0xF])
		case !utf8.ValidRune(r):
			r = 0xFFFD
			fallthrough
		case r < 0x10000:
			b.writeString(`\u`)
			for s := 12; s >= 0; s -= 4 {
				b.writeByte(ldigits[r>>uint(s)&0xF])
			}
		default:
			b.writeString(`\U`)
			for s := 28; s >= 0; s -= 4 {
				b.writeByte(ldigits[r>>uint(s)&0xF])
			}
		}
	}
}
