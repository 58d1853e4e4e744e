package dispatch

import (
	"testing"

	"github.com/akashmaji946/go-redis-lite/internal/resp"
	"github.com/akashmaji946/go-redis-lite/internal/store"
)

func cmd(parts ...string) resp.Frame {
	items := make([]resp.Frame, len(parts))
	for i, p := range parts {
		items[i] = resp.Frame{Type: resp.BulkStringFrame, Bulk: []byte(p)}
	}
	return resp.Frame{Type: resp.ArrayFrame, Arr: items}
}

func newTestDispatcher() *Dispatcher {
	return New(store.New(), nil)
}

// P8: PING, ping, PiNg all return pong.
func TestPingCaseInsensitive(t *testing.T) {
	d := newTestDispatcher()
	for _, name := range []string{"PING", "ping", "PiNg"} {
		got := d.Dispatch(cmd(name))
		want := resp.BulkString("pong")
		if got.Type != want.Type || got.Str != want.Str {
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
	}
}

func TestPingRejectsArgs(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("PING", "extra"))
	if got.Type != resp.ErrorReply {
		t.Fatalf("got %v, want error", got)
	}
}

func TestEcho(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("ECHO", "HELLO WORLD"))
	if got.Type != resp.BulkStringReply || got.Str != "HELLO WORLD" {
		t.Fatalf("got %v", got)
	}
}

func TestSetThenGet(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("SET", "name", "Wizard of Oz"))
	if got.Type != resp.SimpleStringReply || got.Str != "OK" {
		t.Fatalf("SET got %v", got)
	}
	got = d.Dispatch(cmd("GET", "name"))
	if got.Type != resp.BulkStringReply || got.Str != "Wizard of Oz" {
		t.Fatalf("GET got %v", got)
	}
}

func TestGetMissingIsNullBulk(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("GET", "nope"))
	if got.Type != resp.NullBulkReply {
		t.Fatalf("got %v, want NullBulk (see DESIGN.md for the +(nil) deviation)", got)
	}
}

// Scenario 5, §8: EXISTS counts duplicates.
func TestExistsCountsDuplicates(t *testing.T) {
	d := newTestDispatcher()
	d.Dispatch(cmd("SET", "a", "1"))
	got := d.Dispatch(cmd("EXISTS", "a", "b", "a"))
	if got.Type != resp.IntegerReply || got.Num != 2 {
		t.Fatalf("got %v, want Integer(2)", got)
	}
}

func TestDelCountsExisting(t *testing.T) {
	d := newTestDispatcher()
	d.Dispatch(cmd("SET", "a", "1"))
	d.Dispatch(cmd("SET", "b", "1"))
	got := d.Dispatch(cmd("DEL", "a", "b", "c"))
	if got.Type != resp.IntegerReply || got.Num != 2 {
		t.Fatalf("got %v, want Integer(2)", got)
	}
}

// Scenario 6, §8.
func TestIncrOnAbsentThenOnNonInteger(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("INCR", "c"))
	if got.Type != resp.IntegerReply || got.Num != 1 {
		t.Fatalf("got %v, want Integer(1)", got)
	}
	got = d.Dispatch(cmd("INCR", "c"))
	if got.Type != resp.IntegerReply || got.Num != 2 {
		t.Fatalf("got %v, want Integer(2)", got)
	}

	d.Dispatch(cmd("SET", "c", "abc"))
	got = d.Dispatch(cmd("INCR", "c"))
	if got.Type != resp.ErrorReply || got.Str != "could not parse stored number" {
		t.Fatalf("got %v", got)
	}
}

func TestDecr(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("DECR", "c"))
	if got.Type != resp.IntegerReply || got.Num != -1 {
		t.Fatalf("got %v, want Integer(-1)", got)
	}
}

func TestSetWithExpirationVariants(t *testing.T) {
	d := newTestDispatcher()
	for _, variant := range []string{"EX", "PX", "EXAT", "PXAT"} {
		got := d.Dispatch(cmd("SET", "k", "v", variant, "100"))
		if got.Type != resp.SimpleStringReply || got.Str != "OK" {
			t.Fatalf("variant %s: got %v", variant, got)
		}
	}
}

func TestSetUnknownVariant(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("SET", "k", "v", "BOGUS", "1"))
	if got.Type != resp.ErrorReply || got.Str != "unknown SET variant" {
		t.Fatalf("got %v", got)
	}
}

func TestSetInvalidExpiration(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("SET", "k", "v", "EX", "not-a-number"))
	if got.Type != resp.ErrorReply || got.Str != "invalid SET expiration" {
		t.Fatalf("got %v", got)
	}
}

// §9: a past EXAT/PXAT deadline must never underflow; the key should be
// immediately absent rather than producing a garbage far-future TTL.
func TestSetExatInThePastExpiresImmediately(t *testing.T) {
	d := newTestDispatcher()
	d.Dispatch(cmd("SET", "k", "v", "EXAT", "1"))
	got := d.Dispatch(cmd("GET", "k"))
	if got.Type != resp.NullBulkReply {
		t.Fatalf("got %v, want key to already be expired", got)
	}
}

func TestUnknownCommand(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("BOGUS"))
	if got.Type != resp.ErrorReply || got.Str != "unknown command 'BOGUS'" {
		t.Fatalf("got %v", got)
	}
}

func TestEmptyCommandArray(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(resp.Frame{Type: resp.ArrayFrame})
	if got.Type != resp.ErrorReply || got.Str != "commands array is empty" {
		t.Fatalf("got %v", got)
	}
}

func TestUnsupportedTopLevelType(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(resp.Frame{Type: resp.SimpleStringFrame, Str: "PING"})
	if got.Type != resp.ErrorReply || got.Str != "unsupported RESP type" {
		t.Fatalf("got %v", got)
	}
}

func TestCommandIsNullBulkStub(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("COMMAND"))
	if got.Type != resp.NullBulkReply {
		t.Fatalf("got %v, want NullBulk", got)
	}
}

func TestInfoWithoutReporter(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch(cmd("INFO"))
	if got.Type != resp.BulkStringReply {
		t.Fatalf("got %v", got)
	}
}
