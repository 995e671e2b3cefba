package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqua_commerce/internal/common"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Ghi đè item cũ: isNew = false
	isNew, err = r.Register("a", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	got, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, 2, got)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRequiredField))
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0
	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	got, err := r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", got)

	// Lần 2 trả về item đã có, không gọi lại creator
	got, err = r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", got)
	assert.Equal(t, 1, calls)
}

func TestRegistry_Update(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("n", 1)

	err := r.Update("n", func(cur int) (int, error) { return cur + 1, nil })
	require.NoError(t, err)
	got, _ := r.Get("n")
	assert.Equal(t, 2, got)

	err = r.Update("missing", func(cur int) (int, error) { return cur, nil })
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRegistry_ClearVaClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	cleaned := []int{}
	deleted, err := r.Clear("a", func(v int) error {
		cleaned = append(cleaned, v)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []int{1}, cleaned)

	// Xóa item không tồn tại: không lỗi, deleted = false
	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	_, exists := r.Get("b")
	assert.False(t, exists)
}

func TestRegistry_DongThoi(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register("k", 1)
		}()
		go func() {
			defer wg.Done()
			r.Get("k")
		}()
	}
	wg.Wait()

	got, exists := r.Get("k")
	assert.True(t, exists)
	assert.Equal(t, 1, got)
}
