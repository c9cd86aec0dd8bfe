package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDParam parses a hex object id from a path parameter.
func ObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, errors.ErrInvalidInput(err).WithMessage("Invalid " + name)
	}
	return id, nil
}
