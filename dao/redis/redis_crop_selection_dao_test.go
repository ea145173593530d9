package redis

import (
	"context"
	"testing"

	"farm-dashboard/config"
	"farm-dashboard/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCropSelectionDAO_GetSelectedCrop_Unset(t *testing.T) {
	dao := NewRedisCropSelectionDAO(db.NewMockRedisClient(context.Background()))

	key, err := dao.GetSelectedCrop()

	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestRedisCropSelectionDAO_SetSelectedCrop_Normalizes(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCropSelectionDAO(mockClient)

	require.NoError(t, dao.SetSelectedCrop(" Tomatoes "))

	stored, err := mockClient.Get(config.SELECTED_CROP_KEY)
	require.NoError(t, err)
	assert.Equal(t, "tomatoes", stored)

	key, err := dao.GetSelectedCrop()
	require.NoError(t, err)
	assert.Equal(t, "tomatoes", key)
}

func TestRedisCropSelectionDAO_SetSelectedCrop_EmptyClears(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCropSelectionDAO(mockClient)
	require.NoError(t, dao.SetSelectedCrop("corn"))

	require.NoError(t, dao.SetSelectedCrop(""))

	_, err := mockClient.Get(config.SELECTED_CROP_KEY)
	assert.ErrorIs(t, err, db.ErrKeyNotFound)
}

func TestRedisCropSelectionDAO_Subscribe_ReceivesChanges(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCropSelectionDAO(mockClient)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var received []string
	require.NoError(t, dao.Subscribe(ctx, func(key string) {
		received = append(received, key)
	}))

	require.NoError(t, dao.SetSelectedCrop("Corn"))
	require.NoError(t, dao.SetSelectedCrop(""))

	assert.Equal(t, []string{"corn", ""}, received)
}
