package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTeacherRequestSkipsEmptyFields(t *testing.T) {
	update := UpdateTeacherRequest{FullName: "Ada", Phone: ""}.ToUpdate()

	require.NotNil(t, update.FullName)
	assert.Equal(t, "Ada", *update.FullName)
	assert.Nil(t, update.Qualifications)
	assert.Nil(t, update.Email)
	assert.Nil(t, update.Phone)
	assert.True(t, UpdateTeacherRequest{}.ToUpdate().IsEmpty())
}

func TestUpdateCourseRequestKeepsZeroPrice(t *testing.T) {
	var req UpdateCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":0}`), &req))

	update := req.ToUpdate()
	require.NotNil(t, update.Price)
	assert.Equal(t, int64(0), *update.Price)
	assert.False(t, update.IsEmpty())

	req = UpdateCourseRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"price":null,"name":""}`), &req))
	assert.True(t, req.ToUpdate().IsEmpty())
}

func TestCreateCourseRequestAcceptsLegacyTeacherKey(t *testing.T) {
	var req CreateCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Go","description":"d","location":"l","price":10,"TeacherId":3}`), &req))

	course := req.ToModel()
	assert.Equal(t, int64(3), course.TeacherID)
	assert.Equal(t, int64(10), course.Price)
	assert.Equal(t, "Go", course.Name)
}

func TestUpdateProfileRequestToUpdate(t *testing.T) {
	update := UpdateProfileRequest{Email: "new@example.com"}.ToUpdate()

	assert.Nil(t, update.Username)
	assert.Nil(t, update.FullName)
	assert.Nil(t, update.Password)
	require.NotNil(t, update.Email)
	assert.Equal(t, "new@example.com", *update.Email)
}
