package resp

// DecodeCommand decodes one top-level Frame and additionally enforces the
// command-input shape for arrays: an Array whose elements are not all
// BulkString frames fails with ErrUnexpectedVariant. A top-level frame that
// is not an Array is returned as decoded, without error; the dispatcher
// rejects it. This is the entry point the connection driver uses;
// plain Decode is also exported for callers (tests, the encoder round-trip
// checks) that need to read an arbitrary RESP value.
func DecodeCommand(input []byte) (Frame, []byte, error) {
	frame, rest, err := Decode(input)
	if err != nil {
		return Frame{}, input, err
	}
	if frame.Type != ArrayFrame {
		return frame, rest, nil
	}
	for _, item := range frame.Arr {
		if !item.IsBulkString() {
			return Frame{}, input, ErrUnexpectedVariant
		}
	}
	return frame, rest, nil
}
