package models

import (
	"encoding/json"
	"fmt"

	"cardoctor/utils"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Price is a whole-unit amount. Catalog documents keep prices as text
// ("120", "99.5"), so decoding accepts strings and numbers alike and keeps
// the leading integer. Text without a leading number, and any other BSON
// type, decodes to 0.
type Price int

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}
	switch t {
	case bsontype.String:
		s, ok := v.StringValueOK()
		if !ok {
			return fmt.Errorf("models.Price: malformed string value")
		}
		n, _ := utils.ParseLeadingInt(s)
		*p = Price(n)
	case bsontype.Int32:
		*p = Price(v.Int32())
	case bsontype.Int64:
		*p = Price(v.Int64())
	case bsontype.Double:
		n, _ := utils.TruncateFloat(v.Double())
		*p = Price(n)
	case bsontype.Decimal128:
		d, ok := v.Decimal128OK()
		if !ok {
			return fmt.Errorf("models.Price: malformed decimal value")
		}
		n, _ := utils.ParseLeadingInt(d.String())
		*p = Price(n)
	default:
		// null, booleans, documents and the like carry no amount.
		*p = 0
	}
	return nil
}

// UnmarshalJSON accepts both "120" and 120.
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*p = 0
	case string:
		n, _ := utils.ParseLeadingInt(v)
		*p = Price(n)
	case float64:
		n, _ := utils.TruncateFloat(v)
		*p = Price(n)
	default:
		return fmt.Errorf("models.Price: cannot decode %s", string(data))
	}
	return nil
}
