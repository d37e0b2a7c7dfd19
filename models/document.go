package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stored documents are schema-less. The typed models name the fields the
// server works with and collect everything else in an inline Extra map, which
// is flattened back into the JSON object next to the named fields.

// marshalFlat encodes the named fields of fields together with extra.
// Named fields win over extra keys of the same name.
func marshalFlat(fields interface{}, extra bson.M) ([]byte, error) {
	named, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return named, nil
	}

	var known map[string]json.RawMessage
	if err := json.Unmarshal(named, &known); err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(extra)+len(known))
	for k, v := range extra {
		out[k] = plainValue(v)
	}
	for k, v := range known {
		out[k] = v
	}
	return json.Marshal(out)
}

// unmarshalFlat decodes data into fields and returns the keys fields does
// not declare. It returns a nil map when there are none.
func unmarshalFlat(data []byte, fields interface{}) (bson.M, error) {
	if err := json.Unmarshal(data, fields); err != nil {
		return nil, err
	}
	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	declared := jsonFieldNames(reflect.TypeOf(fields))
	var extra bson.M
	for k, v := range all {
		if declared[k] {
			continue
		}
		if extra == nil {
			extra = bson.M{}
		}
		extra[k] = v
	}
	return extra, nil
}

func jsonFieldNames(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names[name] = true
	}
	return names
}

// plainValue turns ordered BSON documents and arrays into JSON-friendly maps
// and slices. Scalars such as DateTime and ObjectID carry their own JSON
// encoding and pass through.
func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			m[k] = plainValue(e)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			m[k] = plainValue(e)
		}
		return m
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plainValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}
