package dispatch

import (
	"strconv"
	"time"

	"github.com/akashmaji946/go-redis-lite/internal/resp"
)

func wrongArgs(cmd string) resp.Reply {
	return resp.Err("wrong number of arguments for " + cmd + " command")
}

func handleCommand(d *Dispatcher, args [][]byte) resp.Reply {
	return resp.NullBulk()
}

func handlePing(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) != 0 {
		return wrongArgs("ping")
	}
	return resp.BulkString("pong")
}

func handleEcho(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) != 1 {
		return wrongArgs("echo")
	}
	return resp.BulkString(string(args[0]))
}

func handleGet(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) != 1 {
		return wrongArgs("get")
	}
	v, ok := d.Store.Get(string(args[0]))
	if !ok {
		// The source returns a bulk string literally containing "+(nil)",
		// almost certainly a bug (spec.md §9). This implementation emits
		// the canonical RESP null-bulk sentinel instead.
		return resp.NullBulk()
	}
	return resp.BulkString(v)
}

func handleExists(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) < 1 {
		return wrongArgs("exists")
	}
	var count int64
	for _, k := range args {
		if d.Store.Exists(string(k)) {
			count++
		}
	}
	return resp.Integer(count)
}

func handleDel(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) < 1 {
		return wrongArgs("del")
	}
	var count int64
	for _, k := range args {
		if d.Store.Del(string(k)) {
			count++
		}
	}
	return resp.Integer(count)
}

func handleIncr(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) != 1 {
		return wrongArgs("incr")
	}
	return incrBy(d, string(args[0]), 1)
}

func handleDecr(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) != 1 {
		return wrongArgs("decr")
	}
	return incrBy(d, string(args[0]), -1)
}

func incrBy(d *Dispatcher, key string, delta int64) resp.Reply {
	n, err := d.Store.IncrBy(key, delta)
	if err != nil {
		return resp.Err("could not parse stored number")
	}
	return resp.Integer(n)
}

func handleInfo(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) != 0 {
		return wrongArgs("info")
	}
	if d.Info == nil {
		return resp.BulkString("")
	}
	return resp.BulkString(d.Info.Report())
}

// handleSet implements SET k v [EX sec|PX ms|EXAT unix-sec|PXAT unix-ms].
func handleSet(d *Dispatcher, args [][]byte) resp.Reply {
	if len(args) != 2 && len(args) != 4 {
		return wrongArgs("set")
	}

	key := string(args[0])
	value := string(args[1])

	if len(args) == 2 {
		d.Store.Set(key, value)
		return resp.SimpleString("OK")
	}

	variant := string(args[2])
	rawAmount := string(args[3])
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		return resp.Err("invalid SET expiration")
	}

	now := time.Now()
	var deadline time.Time

	switch variant {
	case "EX":
		deadline = now.Add(time.Duration(amount) * time.Second)
	case "PX":
		deadline = now.Add(time.Duration(amount) * time.Millisecond)
	case "EXAT":
		deadline = time.Unix(amount, 0)
	case "PXAT":
		deadline = time.Unix(amount/1000, (amount%1000)*int64(time.Millisecond))
	default:
		return resp.Err("unknown SET variant")
	}

	// A deadline at or before now is never underflowed into a huge TTL
	// (the source's unsigned-subtraction bug); it's stored as already
	// expired, which SetExpiring and every reader already treat as absent.
	d.Store.SetExpiring(key, value, deadline)
	return resp.SimpleString("OK")
}
