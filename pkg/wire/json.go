package wire

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// max length of the input excerpt returned instead of a syntax error
const maxErrorInfo = 2000

// Decoder reads a stream of json values.
// If the input is not valid json, the error holds the unparsed input
// instead of a position
type Decoder struct {
	native *json.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		native: json.NewDecoder(r),
	}
}

// More reports whether there is another value in the stream.
func (d *Decoder) More() bool {
	return d.native.More()
}

func (d *Decoder) Decode(retval interface{}) error {
	return d.readable(d.native.Decode(retval))
}

// Finish returns an error if the rest of the stream holds anything but
// whitespace. More reports false on a stray '}' or ']' as well as at the
// end of input.
func (d *Decoder) Finish() error {

	token, err := d.native.Token()
	if err == io.EOF {
		return nil
	} else if err != nil {
		return d.readable(err)
	}

	return errors.Errorf("unexpected token: %v", token)
}

// readable replaces a syntax error with the unparsed input
func (d *Decoder) readable(err error) error {

	if err == nil {
		return nil
	}

	if _, ok := err.(*json.SyntaxError); ok {
		errInfo := bytes.NewBuffer(nil)
		if _, errCopy := io.Copy(errInfo, d.native.Buffered()); errCopy != nil {
			return err
		}

		if errInfo.Len() > maxErrorInfo {
			errInfo.Truncate(maxErrorInfo)
		}

		return errors.New(errInfo.String())
	}

	return err
}

// DecodeJSON unmarshal a single json value from r
func DecodeJSON(r io.Reader, retval interface{}) error {
	return NewDecoder(r).Decode(retval)
}

// JSONWithoutSecrets encodes obj and masks every string value.
func JSONWithoutSecrets(obj interface{}) ([]byte, error) {

	out, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	return RemoveSecretsFromJSON(out), nil
}

// RemoveSecretsFromJSON replaces every string value with "*", inside
// objects and arrays alike. Object keys and empty strings are kept as is.
// The input is expected to be encoded json: strings are the only tokens
// that may hold brackets.
func RemoveSecretsFromJSON(in []byte) []byte {

	if len(in) == 0 {
		return in
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(in)))

	var (
		// open containers: '{' or '['
		stack     []byte
		expectKey bool
	)

	for i := 0; i < len(in); i++ {
		c := in[i]

		switch c {
		case '{':
			stack = append(stack, c)
			expectKey = true

		case '[':
			stack = append(stack, c)
			expectKey = false

		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			expectKey = false

		case ':':
			expectKey = false

		case ',':
			expectKey = len(stack) > 0 && stack[len(stack)-1] == '{'

		case '"':
			end := closingQuote(in[i+1:])
			if end == -1 {
				buf.Write(in[i:])
				return buf.Bytes()
			}

			if expectKey || end == 0 {
				buf.Write(in[i : i+end+2])
			} else {
				buf.WriteString(`"*"`)
			}

			i += end + 1
			continue
		}

		buf.WriteByte(c)
	}

	return buf.Bytes()
}

// closingQuote returns the index of the first unescaped quote
func closingQuote(in []byte) int {

	escaped := false
	for i, c := range in {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			return i
		}
	}

	return -1
}
