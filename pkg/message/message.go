package message

import (
	"encoding/json"
)

// Wire format keys:
// https://firebase.google.com/docs/cloud-messaging/http-server-ref#downstream-http-messages-json
const (
	KeyCollapseKey    = "collapse_key"
	KeyDelayWhileIdle = "delay_while_idle"
	KeyTimeToLive     = "time_to_live"
	KeyDryRun         = "dry_run"
	KeyData           = "data"
	KeyNotification   = "notification"
)

// Message is a downstream GCM message builder.
// A Message is not safe for concurrent mutation.
type Message struct {
	collapseKey    *string
	delayWhileIdle *bool
	timeToLive     *int
	dryRun         *bool
	data           map[string]interface{}
	notification   map[string]interface{}
}

func New(cfg *Config) *Message {

	m := &Message{
		data: make(map[string]interface{}),
	}

	if cfg == nil {
		return m
	}

	if cfg.CollapseKey != nil {
		m.SetCollapseKey(*cfg.CollapseKey)
	}

	if cfg.DelayWhileIdle != nil {
		m.SetDelayWhileIdle(*cfg.DelayWhileIdle)
	}

	if cfg.TimeToLive != nil {
		m.SetTimeToLive(*cfg.TimeToLive)
	}

	if cfg.DryRun != nil {
		m.SetDryRun(*cfg.DryRun)
	}

	if cfg.Data != nil {
		m.data = copyMapping(cfg.Data)
	}

	if cfg.Notification != nil {
		m.notification = copyMapping(cfg.Notification)
	}

	return m
}

// NewFromMap builds a message from a generic mapping with camelCase keys
// (see Keys). Unknown keys and values of the wrong type are dropped.
func NewFromMap(src map[string]interface{}) *Message {

	cfg, _ := NewConfig(src)
	return New(cfg)
}

func (m *Message) CollapseKey() (string, bool) {
	if m.collapseKey == nil {
		return "", false
	}
	return *m.collapseKey, true
}

func (m *Message) DelayWhileIdle() (bool, bool) {
	if m.delayWhileIdle == nil {
		return false, false
	}
	return *m.delayWhileIdle, true
}

// TimeToLive in seconds
func (m *Message) TimeToLive() (int, bool) {
	if m.timeToLive == nil {
		return 0, false
	}
	return *m.timeToLive, true
}

func (m *Message) DryRun() (bool, bool) {
	if m.dryRun == nil {
		return false, false
	}
	return *m.dryRun, true
}

func (m *Message) SetCollapseKey(val string) {
	m.collapseKey = &val
}

func (m *Message) SetDelayWhileIdle(val bool) {
	m.delayWhileIdle = &val
}

func (m *Message) SetTimeToLive(seconds int) {
	m.timeToLive = &seconds
}

func (m *Message) SetDryRun(val bool) {
	m.dryRun = &val
}

// Data returns the data payload. It is never nil.
func (m *Message) Data() map[string]interface{} {

	if m.data == nil {
		m.data = make(map[string]interface{})
	}

	return m.data
}

// Notification returns the notification payload and false if it was never set.
func (m *Message) Notification() (map[string]interface{}, bool) {
	return m.notification, m.notification != nil
}

// AddData sets data[key] when called with a key and a value,
// otherwise it replaces the whole data payload (see AddDataWithObject).
func (m *Message) AddData(keyOrObject interface{}, value ...interface{}) {

	if len(value) == 0 {
		m.AddDataWithObject(keyOrObject)
		return
	}

	if key, ok := keyOrObject.(string); ok {
		m.AddDataWithKeyValue(key, value[0])
	}
}

func (m *Message) AddDataWithKeyValue(key string, value interface{}) {

	if m.data == nil {
		m.data = make(map[string]interface{})
	}

	m.data[key] = normalize(value)
}

// AddDataWithObject replaces data with a copy of obj. Anything but a
// non-empty mapping is ignored.
func (m *Message) AddDataWithObject(obj interface{}) {

	src, ok := toMapping(obj)
	if !ok || len(src) == 0 {
		return
	}

	m.data = copyMapping(src)
}

// AddNotification sets notification[key] when called with a key and a value,
// otherwise it replaces the whole notification (see AddNotificationWithObject).
func (m *Message) AddNotification(keyOrObject interface{}, value ...interface{}) {

	if len(value) == 0 {
		m.AddNotificationWithObject(keyOrObject)
		return
	}

	if key, ok := keyOrObject.(string); ok {
		m.AddNotificationWithKeyValue(key, value[0])
	}
}

func (m *Message) AddNotificationWithKeyValue(key string, value interface{}) {

	if m.notification == nil {
		m.notification = make(map[string]interface{})
	}

	m.notification[key] = normalize(value)
}

// AddNotificationWithObject sets notification to a copy of obj, an empty
// mapping included. Non-mapping values are ignored.
func (m *Message) AddNotificationWithObject(obj interface{}) {

	src, ok := toMapping(obj)
	if !ok {
		return
	}

	m.notification = copyMapping(src)
}

// ToWireFormat returns the fields that are set under their wire keys.
// Empty data is omitted, a notification is emitted whenever it was set.
func (m *Message) ToWireFormat() map[string]interface{} {

	retval := make(map[string]interface{}, 6)

	if m.collapseKey != nil {
		retval[KeyCollapseKey] = *m.collapseKey
	}

	if m.delayWhileIdle != nil {
		retval[KeyDelayWhileIdle] = *m.delayWhileIdle
	}

	if m.timeToLive != nil {
		retval[KeyTimeToLive] = *m.timeToLive
	}

	if m.dryRun != nil {
		retval[KeyDryRun] = *m.dryRun
	}

	if len(m.data) > 0 {
		retval[KeyData] = copyMapping(m.data)
	}

	if m.notification != nil {
		retval[KeyNotification] = copyMapping(m.notification)
	}

	return retval
}

func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToWireFormat())
}
