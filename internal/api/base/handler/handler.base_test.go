package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testModel struct {
	UserID   primitive.ObjectID `json:"userId"`
	Quantity int64              `json:"quantity"`
	Status   string             `json:"status"`
}

type testCreateInput struct {
	UserID   string `json:"userId"`
	Quantity int64  `json:"quantity"`
	Status   string `json:"status"`
}

func TestTransformCreateInputToModel(t *testing.T) {
	h := NewBaseHandler[testModel, testCreateInput, testCreateInput](nil)

	id := primitive.NewObjectID()
	input := testCreateInput{
		UserID:   id.Hex(),
		Quantity: 2,
		Status:   "pending",
	}

	model, err := h.transformCreateInputToModel(&input)
	require.NoError(t, err)

	// ObjectID dạng chuỗi hex trong DTO phải được map về primitive.ObjectID
	assert.Equal(t, id, model.UserID)
	assert.Equal(t, int64(2), model.Quantity)
	assert.Equal(t, "pending", model.Status)
}

func TestTransformCreateInputToModel_HexKhongHopLe(t *testing.T) {
	h := NewBaseHandler[testModel, testCreateInput, testCreateInput](nil)

	input := testCreateInput{UserID: "not-a-hex"}
	_, err := h.transformCreateInputToModel(&input)
	assert.Error(t, err)
}

func TestNormalizeFilter_IdHexSangObjectID(t *testing.T) {
	h := NewBaseHandler[testModel, testCreateInput, testCreateInput](nil)

	id := primitive.NewObjectID()
	filter := map[string]interface{}{
		"_id":    id.Hex(),
		"userId": id.Hex(),
		"status": "pending",
	}
	normalized := h.normalizeFilter(filter)

	assert.Equal(t, id, normalized["_id"])
	assert.Equal(t, id, normalized["userId"])
	assert.Equal(t, "pending", normalized["status"])
}
