package helpers

import (
	"net/http"

	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserId reads the authenticated user id placed on the request by the
// access-token middleware. Every collection is scoped by it.
func GetUserId(r presentationProtocols.HttpRequest) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return primitive.NilObjectID, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	return userId, nil
}
