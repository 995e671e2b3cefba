package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_GiuNguyenUpdateData(t *testing.T) {
	src := &UpdateData{Set: map[string]interface{}{"status": "completed"}}
	got, err := ToUpdateData(src)
	require.NoError(t, err)
	assert.Same(t, src, got)

	byValue := UpdateData{Set: map[string]interface{}{"status": "pending"}}
	got, err = ToUpdateData(byValue)
	require.NoError(t, err)
	assert.Equal(t, byValue.Set, got.Set)
}

func TestToUpdateData_MapThuongWrapTrongSet(t *testing.T) {
	got, err := ToUpdateData(map[string]interface{}{"quantity": 3})
	require.NoError(t, err)
	require.NotNil(t, got.Set)
	assert.Nil(t, got.Unset)
	// ToMap đi qua JSON nên số về dạng float64
	assert.EqualValues(t, 3, got.Set["quantity"])
}

func TestToUpdateData_GiuCauTrucOperator(t *testing.T) {
	got, err := ToUpdateData(map[string]interface{}{
		"$set":   map[string]interface{}{"status": "approved"},
		"$unset": map[string]interface{}{"note": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", got.Set["status"])
	require.NotNil(t, got.Unset)
	_, hasNote := got.Unset["note"]
	assert.True(t, hasNote)
}

func TestToUpdateData_StructVeSet(t *testing.T) {
	type patch struct {
		Status string `json:"status"`
	}
	got, err := ToUpdateData(patch{Status: "processing"})
	require.NoError(t, err)
	assert.Equal(t, "processing", got.Set["status"])
}

func TestUpdateData_BsonTags(t *testing.T) {
	// UpdateData marshal thẳng thành document update của MongoDB
	u := UpdateData{Set: map[string]interface{}{"status": "completed"}}
	raw, err := bson.Marshal(u)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	_, hasSet := doc["$set"]
	assert.True(t, hasSet)
	_, hasUnset := doc["$unset"]
	assert.False(t, hasUnset, "$unset rỗng không được xuất hiện trong document")
}
