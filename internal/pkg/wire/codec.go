package wire

import (
	"bytes"
	"reflect"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

const selectAll = "*"

var ErrUnsupportedSelection = errors.New("unsupported selection encoding")

func init() {
	msgpack.Register(null.Float{}, encodeNullFloat, decodeNullFloat)
	msgpack.Register(null.Int{}, encodeNullInt, decodeNullInt)
	msgpack.Register(null.String{}, encodeNullString, decodeNullString)
	msgpack.Register(model.Selection{}, encodeSelection, decodeSelection)
	msgpack.Register(model.PublisherSelection{}, encodePublisherSelection, decodePublisherSelection)
}

// Marshal encodes v as msgpack using the json field names.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "failed to encode msgpack")
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

func encodeNullFloat(e *msgpack.Encoder, v reflect.Value) error {
	f := v.Interface().(null.Float)
	if !f.Valid {
		return e.EncodeNil()
	}
	return e.EncodeFloat64(f.Float64)
}

func decodeNullFloat(d *msgpack.Decoder, v reflect.Value) error {
	var p *float64
	if err := d.Decode(&p); err != nil {
		return err
	}
	v.Set(reflect.ValueOf(null.FloatFromPtr(p)))
	return nil
}

func encodeNullInt(e *msgpack.Encoder, v reflect.Value) error {
	i := v.Interface().(null.Int)
	if !i.Valid {
		return e.EncodeNil()
	}
	return e.EncodeInt(i.Int64)
}

func decodeNullInt(d *msgpack.Decoder, v reflect.Value) error {
	var p *int64
	if err := d.Decode(&p); err != nil {
		return err
	}
	v.Set(reflect.ValueOf(null.IntFromPtr(p)))
	return nil
}

func encodeNullString(e *msgpack.Encoder, v reflect.Value) error {
	s := v.Interface().(null.String)
	if !s.Valid {
		return e.EncodeNil()
	}
	return e.EncodeString(s.String)
}

func decodeNullString(d *msgpack.Decoder, v reflect.Value) error {
	var p *string
	if err := d.Decode(&p); err != nil {
		return err
	}
	v.Set(reflect.ValueOf(null.StringFromPtr(p)))
	return nil
}

func encodeSelection(e *msgpack.Encoder, v reflect.Value) error {
	s := v.Interface().(model.Selection)
	if s.IsAll() {
		return e.EncodeString(selectAll)
	}
	return e.Encode(s.Values())
}

// decodeStrings reads either the "*" marker or a list of values.
func decodeStrings(d *msgpack.Decoder) (values []string, all bool, err error) {
	raw, err := d.DecodeInterface()
	if err != nil {
		return nil, false, err
	}
	switch raw := raw.(type) {
	case string:
		if raw != selectAll {
			return nil, false, errors.Wrap(ErrUnsupportedSelection, raw)
		}
		return nil, true, nil
	case []any:
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return nil, false, ErrUnsupportedSelection
			}
			values = append(values, s)
		}
		return values, false, nil
	}
	return nil, false, ErrUnsupportedSelection
}

func decodeSelection(d *msgpack.Decoder, v reflect.Value) error {
	values, all, err := decodeStrings(d)
	if err != nil {
		return err
	}
	s := model.AllOf()
	if !all {
		s = model.SubsetOf(values...)
	}
	v.Set(reflect.ValueOf(s))
	return nil
}

func encodePublisherSelection(e *msgpack.Encoder, v reflect.Value) error {
	s := v.Interface().(model.PublisherSelection)
	if s.IsAll() {
		return e.EncodeString(selectAll)
	}
	return e.Encode([]string{s.Publisher()})
}

func decodePublisherSelection(d *msgpack.Decoder, v reflect.Value) error {
	values, all, err := decodeStrings(d)
	if err != nil {
		return err
	}
	s := model.AllPublishers()
	if !all && len(values) > 0 {
		s = model.ExactPublisher(values[0])
	}
	v.Set(reflect.ValueOf(s))
	return nil
}
