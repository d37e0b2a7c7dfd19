package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPriceFromBSON(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  Price
	}{
		{"text", "150", 150},
		{"text with decimals", "20.99", 20},
		{"not a number", "call us", 0},
		{"int32", int32(75), 75},
		{"int64", int64(1200), 1200},
		{"double", 49.9, 49},
		{"null", nil, 0},
		{"decimal", mustDecimal("149.99"), 149},
		{"boolean", true, 0},
		{"document", bson.M{"amount": 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"price": tt.value})
			require.NoError(t, err)

			var svc Service
			require.NoError(t, bson.Unmarshal(raw, &svc))
			assert.Equal(t, tt.want, svc.Price)
		})
	}
}

func mustDecimal(s string) primitive.Decimal128 {
	d, err := primitive.ParseDecimal128(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPriceFromJSON(t *testing.T) {
	var in BookingInput
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@x.com","service_id":"1","price":"80.00"}`), &in))
	assert.Equal(t, Price(80), in.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price":80.7}`), &in))
	assert.Equal(t, Price(80), in.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price":true}`), &in))
}

func TestPriceToJSONIsNumeric(t *testing.T) {
	out, err := json.Marshal(Service{Price: 120})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"price":120`)
}

func TestBookingInputDefaultsStatus(t *testing.T) {
	b := BookingInput{Email: "a@x.com", ServiceID: "svc1"}.ToBooking()
	assert.Equal(t, BookingStatusPending, b.Status)
	assert.True(t, b.ID.IsZero())

	assert.Nil(t, b.Extra)

	b = BookingInput{Email: "a@x.com", ServiceID: "svc1", Status: "confirmed", CustomerName: "Alice", Date: "2026-10-20"}.ToBooking()
	assert.Equal(t, "confirmed", b.Status)
	assert.Equal(t, bson.M{"customerName": "Alice", "date": "2026-10-20"}, b.Extra)
}

func TestIdentityEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", Identity{"email": "a@x.com"}.Email())
	assert.Equal(t, "", Identity{"email": 7}.Email())
	assert.Equal(t, "", Identity(nil).Email())
}
