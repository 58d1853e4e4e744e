// Package dispatch implements the command dispatcher (C4): it matches the
// first element of a decoded command frame to a handler, validates
// argument shape, and produces a Reply.
package dispatch

import (
	"strings"

	"github.com/akashmaji946/go-redis-lite/internal/resp"
	"github.com/akashmaji946/go-redis-lite/internal/store"
	"github.com/akashmaji946/go-redis-lite/internal/sysinfo"
)

// Handler executes one command against args (everything after the command
// name) and the dispatcher's shared store.
type Handler func(d *Dispatcher, args [][]byte) resp.Reply

// Dispatcher owns the shared store and the table of command handlers. The
// table is built once in New and never mutated afterwards, so Dispatch
// itself needs no locking beyond what Store already provides.
type Dispatcher struct {
	Store *store.Store
	Info  *sysinfo.Reporter
	table map[string]Handler
}

// New builds a Dispatcher wired to store s, with info optionally nil (INFO
// then replies with an empty report rather than panicking).
func New(s *store.Store, info *sysinfo.Reporter) *Dispatcher {
	d := &Dispatcher{Store: s, Info: info}
	d.table = map[string]Handler{
		"command": handleCommand,
		"ping":    handlePing,
		"echo":    handleEcho,
		"set":     handleSet,
		"get":     handleGet,
		"exists":  handleExists,
		"del":     handleDel,
		"incr":    handleIncr,
		"decr":    handleDecr,
		"info":    handleInfo,
	}
	return d
}

// Dispatch implements the C4 contract: frame must be an Array of
// BulkString (resp.DecodeCommand already enforces the element type on the
// way in, but Dispatch checks both the top-level type and every element so
// it can be called directly from tests with a hand-built Frame). The first
// element is lowercased to match the command table; arguments are passed
// through as received.
func (d *Dispatcher) Dispatch(frame resp.Frame) resp.Reply {
	if frame.Type != resp.ArrayFrame {
		return resp.Err("unsupported RESP type")
	}
	for _, item := range frame.Arr {
		if !item.IsBulkString() {
			return resp.Err("unsupported RESP type")
		}
	}
	if len(frame.Arr) == 0 {
		return resp.Err("commands array is empty")
	}

	name := strings.ToLower(string(frame.Arr[0].Bulk))
	handler, ok := d.table[name]
	if !ok {
		return resp.Err("unknown command '" + string(frame.Arr[0].Bulk) + "'")
	}

	args := make([][]byte, 0, len(frame.Arr)-1)
	for _, item := range frame.Arr[1:] {
		args = append(args, item.Bulk)
	}
	return handler(d, args)
}
