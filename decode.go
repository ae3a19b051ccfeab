package cowtrie

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TimeHookFunc handles decoding of a time format field. Strings are parsed
// as RFC3339, numbers are taken as milliseconds since the epoch.
func TimeHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(time.Time{}) {
			return data, nil
		}

		switch f.Kind() {
		case reflect.String:
			return time.Parse(time.RFC3339, data.(string))
		case reflect.Float64:
			return time.Unix(0, int64(data.(float64))*int64(time.Millisecond)), nil
		case reflect.Int64:
			return time.Unix(0, data.(int64)*int64(time.Millisecond)), nil
		case reflect.Int:
			return time.Unix(0, int64(data.(int))*int64(time.Millisecond)), nil
		default:
			return data, nil
		}
	}
}

// Decode converts a map to a struct by mapping key names to
// fields in the struct. It uses a mapstructure library to do the task.
// Keys of the input that match no field are reported as an error.
func Decode(input interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:    nil,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			TimeHookFunc()),
		Result: result,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
