package message

import (
	"reflect"

	"github.com/spf13/cast"
)

// toMapping reports whether obj is a map with string keys.
func toMapping(obj interface{}) (map[string]interface{}, bool) {

	switch obj.(type) {
	case nil, string, []byte:
		// cast parses strings as json objects
		return nil, false
	}

	retval, err := cast.ToStringMapE(obj)
	if err != nil {
		return fromStringKeyedMap(obj)
	} else if retval == nil {
		return nil, false
	}

	return retval, true
}

// fromStringKeyedMap handles typed maps such as map[string]string.
func fromStringKeyedMap(obj interface{}) (map[string]interface{}, bool) {

	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Map || val.Type().Key().Kind() != reflect.String || val.IsNil() {
		return nil, false
	}

	retval := make(map[string]interface{}, val.Len())
	for _, key := range val.MapKeys() {
		retval[key.String()] = val.MapIndex(key).Interface()
	}

	return retval, true
}

func copyMapping(src map[string]interface{}) map[string]interface{} {

	retval := make(map[string]interface{}, len(src))
	for k, v := range src {
		retval[k] = normalize(v)
	}

	return retval
}

// normalize converts yaml style maps (map[interface{}]interface{})
// to map[string]interface{}, json.Marshal rejects them otherwise.
func normalize(value interface{}) interface{} {

	switch src := value.(type) {
	case map[interface{}]interface{}:
		if src == nil {
			return map[string]interface{}(nil)
		}
		return copyMapping(cast.ToStringMap(src))

	case map[string]interface{}:
		if src == nil {
			return src
		}
		return copyMapping(src)

	case []interface{}:
		retval := make([]interface{}, len(src))
		for i, v := range src {
			retval[i] = normalize(v)
		}
		return retval

	default:
		return value
	}
}
