package spatialtree

import (
	"math"
	"reflect"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// DecodeConfig decodes an attribute map, as found in JSON configuration, into a validated config.
// Keys follow the json tags of Config and its region and extent types. Unknown keys are an error, as
// are fractional or out of range values for integer coordinates.
func DecodeConfig[R Region[R, S], S Extent[S]](attributes map[string]interface{}) (Config[R, S], error) {
	var cfg Config[R, S]
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     &cfg,
		Metadata:   &md,
		DecodeHook: mapstructure.DecodeHookFuncType(exactIntegers),
	})
	if err != nil {
		return Config[R, S]{}, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return Config[R, S]{}, errors.Wrap(err, "decoding tree config")
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		return Config[R, S]{}, errors.Errorf("unknown tree config attributes %q", md.Unused)
	}
	if err := cfg.Validate(); err != nil {
		return Config[R, S]{}, err
	}
	return cfg, nil
}

// DecodeConfigText parses a JSON5 document, which may carry comments, unquoted keys and trailing
// commas, and decodes it as DecodeConfig does.
func DecodeConfigText[R Region[R, S], S Extent[S]](data []byte) (Config[R, S], error) {
	var attributes map[string]interface{}
	if err := json5.Unmarshal(data, &attributes); err != nil {
		return Config[R, S]{}, errors.Wrap(err, "parsing tree config")
	}
	return DecodeConfig[R, S](attributes)
}

// exactIntegers rejects numbers that an integer coordinate field cannot hold exactly, instead of
// letting them truncate or wrap.
func exactIntegers(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	field := reflect.New(to).Elem()
	value := reflect.ValueOf(data)
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f := value.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, errors.Errorf("%v is not an integer", data)
		}
		if f < math.MinInt64 || f >= math.MaxInt64 || field.OverflowInt(int64(f)) {
			return nil, errors.Errorf("%v is out of range for %v", data, to)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.OverflowInt(value.Int()) {
			return nil, errors.Errorf("%v is out of range for %v", data, to)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := value.Uint(); u > math.MaxInt64 || field.OverflowInt(int64(u)) {
			return nil, errors.Errorf("%v is out of range for %v", data, to)
		}
	}
	return data, nil
}
