package resp

import (
	"strconv"
	"strings"
)

// ReplyType tags the variant held by a Reply.
type ReplyType int

const (
	IntegerReply ReplyType = iota
	BulkStringReply
	SimpleStringReply
	ErrorReply
	ArrayReply
	NullBulkReply
)

// Reply is a typed value produced by the dispatcher and handed to Encode.
type Reply struct {
	Type ReplyType
	Num  int64
	Str  string
	Arr  []Reply
}

func Integer(n int64) Reply       { return Reply{Type: IntegerReply, Num: n} }
func BulkString(s string) Reply   { return Reply{Type: BulkStringReply, Str: s} }
func SimpleString(s string) Reply { return Reply{Type: SimpleStringReply, Str: s} }
func Err(s string) Reply          { return Reply{Type: ErrorReply, Str: s} }
func Array(items []Reply) Reply   { return Reply{Type: ArrayReply, Arr: items} }
func NullBulk() Reply             { return Reply{Type: NullBulkReply} }

// Encode serializes r into its RESP wire bytes. Encode is total: it never
// fails, since every Reply variant has a defined wire form.
func Encode(r Reply) []byte {
	var b strings.Builder
	encodeInto(&b, r)
	return []byte(b.String())
}

func encodeInto(b *strings.Builder, r Reply) {
	switch r.Type {
	case IntegerReply:
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(r.Num, 10))
		b.WriteString("\r\n")

	case SimpleStringReply:
		b.WriteByte('+')
		b.WriteString(r.Str)
		b.WriteString("\r\n")

	case ErrorReply:
		b.WriteByte('-')
		b.WriteString(r.Str)
		b.WriteString("\r\n")

	case BulkStringReply:
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(len(r.Str))) // byte length, not rune count (I4)
		b.WriteString("\r\n")
		b.WriteString(r.Str)
		b.WriteString("\r\n")

	case NullBulkReply:
		b.WriteString("$-1\r\n")

	case ArrayReply:
		b.WriteByte('*')
		b.WriteString(strconv.Itoa(len(r.Arr)))
		b.WriteString("\r\n")
		for _, item := range r.Arr {
			encodeInto(b, item)
		}
	}
}
