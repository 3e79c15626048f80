package message

import (
	"encoding/json"
	"io"

	"github.com/dialogs/gcm-message/pkg/wire"
	"github.com/edganiukov/fcm"
	"github.com/pkg/errors"
)

// Body streams the json encoding of the message as it is at the moment of
// the call. The caller must close it.
func (m *Message) Body() io.ReadCloser {

	snapshot := m.ToWireFormat()

	return wire.NewPipe(func(w io.Writer) error {
		return json.NewEncoder(w).Encode(snapshot)
	})
}

// ToFCM converts the message to the legacy FCM client message.
// Notification values must be strings to fit fcm.Notification.
func (m *Message) ToFCM() (*fcm.Message, error) {

	body := m.Body()
	defer body.Close()

	retval := &fcm.Message{}
	if err := wire.DecodeJSON(body, retval); err != nil {
		return nil, errors.Wrap(err, "message to fcm")
	}

	return retval, nil
}
