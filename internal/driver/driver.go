// Package driver implements the connection driver (C5, a boundary, not
// part of the protocol core): per-connection byte plumbing between the
// network and the decoder/dispatcher/encoder.
package driver

import (
	"errors"
	"io"
	"net"

	"github.com/akashmaji946/go-redis-lite/internal/dispatch"
	"github.com/akashmaji946/go-redis-lite/internal/logging"
	"github.com/akashmaji946/go-redis-lite/internal/resp"
)

const readChunkSize = 4096

// Serve owns conn for its entire lifetime: it accumulates bytes into a
// growing buffer, decodes one command frame at a time, dispatches it, and
// writes the encoded reply back, until the peer closes the connection or a
// transport error occurs. It never returns early on a decode error — that
// becomes an error reply and the loop continues.
func Serve(conn net.Conn, d *dispatch.Dispatcher, log *logging.Logger) {
	defer conn.Close()

	var buf []byte
	chunk := make([]byte, readChunkSize)

	for {
		frame, consumedUpTo, ready, err := tryDecode(buf)
		if err != nil {
			// Malformed input: reply with an error and discard the buffer
			// so the connection survives (§4.5). There's no reliable way
			// to know where a malformed frame ends, so the whole pending
			// buffer is dropped rather than guessing a resync point.
			if _, werr := conn.Write(resp.Encode(resp.Err("failed to deserialize"))); werr != nil {
				return
			}
			buf = nil
			continue
		}
		if ready {
			buf = buf[consumedUpTo:]
			reply := d.Dispatch(frame)
			if _, werr := conn.Write(resp.Encode(reply)); werr != nil {
				log.Warn("write error on %s: %v", conn.RemoteAddr(), werr)
				return
			}
			continue
		}

		n, rerr := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if rerr != nil {
			if rerr != io.EOF {
				log.Warn("read error on %s: %v", conn.RemoteAddr(), rerr)
			}
			return
		}
	}
}

// tryDecode attempts to decode one command frame from buf without
// consuming more input than is actually present. ready is false when the
// buffer doesn't yet hold a complete frame (resp.ErrIncomplete, or empty
// input — the driver should read more before retrying either way).
func tryDecode(buf []byte) (frame resp.Frame, consumed int, ready bool, err error) {
	if len(buf) == 0 {
		return resp.Frame{}, 0, false, nil
	}
	frame, rest, err := resp.DecodeCommand(buf)
	if err != nil {
		if errors.Is(err, resp.ErrIncomplete) {
			return resp.Frame{}, 0, false, nil
		}
		return resp.Frame{}, 0, false, err
	}
	return frame, len(buf) - len(rest), true, nil
}
