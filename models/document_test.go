package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestServiceKeepsStoredFields(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: "Engine repair"},
		{Key: "price", Value: "150"},
		{Key: "rating", Value: 4.5},
		{Key: "category", Value: "engine"},
		{Key: "facility", Value: bson.A{bson.D{{Key: "name", Value: "Inspection"}, {Key: "details", Value: "Full check"}}}},
	})
	require.NoError(t, err)

	var svc Service
	require.NoError(t, bson.Unmarshal(raw, &svc))
	assert.Equal(t, Price(150), svc.Price)
	assert.Equal(t, "engine", svc.Extra["category"])

	out, err := json.Marshal(svc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id": "`+id.Hex()+`",
		"title": "Engine repair",
		"price": 150,
		"rating": 4.5,
		"category": "engine",
		"facility": [{"name": "Inspection", "details": "Full check"}]
	}`, string(out))
}

func TestBookingKeepsStoredTypes(t *testing.T) {
	when := time.Date(2026, 10, 20, 9, 30, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "email", Value: "a@x.com"},
		{Key: "service_id", Value: "02"},
		{Key: "date", Value: primitive.NewDateTimeFromTime(when)},
		{Key: "phone", Value: "555-0100"},
		{Key: "message", Value: "after 5pm"},
	})
	require.NoError(t, err)

	var b Booking
	require.NoError(t, bson.Unmarshal(raw, &b))
	assert.Equal(t, "a@x.com", b.Email)
	assert.Equal(t, primitive.NewDateTimeFromTime(when), b.Extra["date"])

	out, err := json.Marshal(b)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "2026-10-20T09:30:00Z", got["date"])
	assert.Equal(t, "555-0100", got["phone"])
	assert.Equal(t, "after 5pm", got["message"])
	assert.NotContains(t, got, "status")
}

func TestBookingJSONRoundTrip(t *testing.T) {
	in := `{"_id":"` + primitive.NewObjectID().Hex() + `","email":"a@x.com","service_id":"02","status":"pending","price":80,"customerName":"Alice","notes":{"car":"sedan"}}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(in), &b))
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, Price(80), b.Price)
	assert.Equal(t, "Alice", b.Extra["customerName"])
	assert.NotContains(t, b.Extra, "email")

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestBookingWritesExtraInline(t *testing.T) {
	b := BookingInput{Email: "a@x.com", ServiceID: "02", CustomerName: "Alice"}.ToBooking()

	raw, err := bson.Marshal(b)
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, "Alice", doc.Lookup("customerName").StringValue())
	assert.Equal(t, BookingStatusPending, doc.Lookup("status").StringValue())
	_, err = doc.LookupErr("Extra")
	assert.Error(t, err)
}
