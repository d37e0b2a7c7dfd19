package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BookingStatusPending = "pending"

// Booking represents a stored booking document. Fields the server does not
// act on (service, customerName, img, date, ...) live in Extra with their
// stored BSON types.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email,omitempty"`
	ServiceID string             `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Price     Price              `bson:"price,omitempty" json:"price,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"` // free text, e.g. "pending", "confirmed"
	Extra     bson.M             `bson:",inline" json:"-"`
}

type bookingFields Booking

func (b Booking) MarshalJSON() ([]byte, error) {
	return marshalFlat(bookingFields(b), b.Extra)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var f bookingFields
	extra, err := unmarshalFlat(data, &f)
	if err != nil {
		return err
	}
	f.Extra = extra
	*b = Booking(f)
	return nil
}

// BookingInput is the request body of POST /bookings. The email only has to
// match the session's.
type BookingInput struct {
	Email        string `json:"email" binding:"required"`
	ServiceID    string `json:"service_id" binding:"required"`
	Service      string `json:"service"`
	CustomerName string `json:"customerName"`
	Img          string `json:"img"`
	Date         string `json:"date"`
	Price        Price  `json:"price"`
	Status       string `json:"status"`
}

// ToBooking builds the document to insert. A missing status becomes pending.
func (in BookingInput) ToBooking() Booking {
	status := in.Status
	if status == "" {
		status = BookingStatusPending
	}
	b := Booking{
		Email:     in.Email,
		ServiceID: in.ServiceID,
		Price:     in.Price,
		Status:    status,
	}
	for k, v := range map[string]string{
		"service":      in.Service,
		"customerName": in.CustomerName,
		"img":          in.Img,
		"date":         in.Date,
	} {
		if v == "" {
			continue
		}
		if b.Extra == nil {
			b.Extra = bson.M{}
		}
		b.Extra[k] = v
	}
	return b
}

// StatusInput is the request body of PATCH /bookings/:id.
type StatusInput struct {
	Status string `json:"status" binding:"required"`
}
