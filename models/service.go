package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a catalog entry. Services are created directly in the store and
// are read-only through the API. Descriptive fields such as description and
// facility are kept as stored in Extra.
type Service struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceID string             `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Img       string             `bson:"img,omitempty" json:"img,omitempty"`
	Price     Price              `bson:"price" json:"price"`
	Extra     bson.M             `bson:",inline" json:"-"`
}

type serviceFields Service

func (s Service) MarshalJSON() ([]byte, error) {
	return marshalFlat(serviceFields(s), s.Extra)
}

func (s *Service) UnmarshalJSON(data []byte) error {
	var f serviceFields
	extra, err := unmarshalFlat(data, &f)
	if err != nil {
		return err
	}
	f.Extra = extra
	*s = Service(f)
	return nil
}
