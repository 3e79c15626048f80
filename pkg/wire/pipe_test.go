package wire

import (
	"encoding/json"
	"errors"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipeChunks(t *testing.T) {

	payload := map[string]interface{}{
		"collapse_key": "key",
		"data":         map[string]interface{}{"text": strings.Repeat("x", 10000)},
	}

	expect, err := json.Marshal(payload)
	require.NoError(t, err)

	for _, size := range []int{1, 7, 4096, 65536} {
		p := NewPipe(func(w io.Writer) error {
			return json.NewEncoder(w).Encode(payload)
		})

		var res []byte
		chunk := make([]byte, size)
		for {
			n, err := p.Read(chunk)
			res = append(res, chunk[:n]...)
			if err == io.EOF {
				break
			}
			require.NoError(t, err, size)
		}

		require.Equal(t, string(expect)+"\n", string(res), size)
		require.NoError(t, p.Close(), size)
	}
}

func TestPipePartialWrite(t *testing.T) {

	errEncode := errors.New("encode failed")

	p := NewPipe(func(w io.Writer) error {
		if _, err := w.Write([]byte(`{"data":`)); err != nil {
			return err
		}
		return errEncode
	})

	data, err := ioutil.ReadAll(p)
	require.Equal(t, errEncode, err)
	require.Equal(t, `{"data":`, string(data))

	require.Equal(t, errEncode, p.Close())
	require.Equal(t, errEncode, p.Close())
}

func TestPipeCloseInterruptsWrite(t *testing.T) {

	writeErr := make(chan error, 1)

	p := NewPipe(func(w io.Writer) error {
		for {
			if _, err := w.Write([]byte("chunk")); err != nil {
				writeErr <- err
				return err
			}
		}
	})

	head := make([]byte, 3)
	_, err := io.ReadFull(p, head)
	require.NoError(t, err)
	require.Equal(t, "chu", string(head))

	// the writer is blocked until Close
	require.NoError(t, p.Close())
	require.Equal(t, io.ErrClosedPipe, <-writeErr)

	n, err := p.Read(head)
	require.Equal(t, 0, n)
	require.Equal(t, io.EOF, err)
}

func TestPipeWriteError(t *testing.T) {

	errWrite := errors.New("write error")

	p := NewPipe(func(w io.Writer) error {
		return errWrite
	})

	data, err := ioutil.ReadAll(p)
	require.Equal(t, errWrite, err)
	require.Empty(t, data)

	require.Equal(t, errWrite, p.Close())
}

func TestPipeCloseBeforeRead(t *testing.T) {

	p := NewPipe(func(w io.Writer) error {
		_, err := w.Write([]byte("never read"))
		return err
	})

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	n, err := p.Read(make([]byte, 10))
	require.Equal(t, 0, n)
	require.Equal(t, io.EOF, err)
}
