package handlers

import (
	"fmt"

	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDParam parses the named path parameter as a document ID.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, error) {
	raw := c.Param(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", utils.ErrBadRequest, raw)
	}
	return id, nil
}
