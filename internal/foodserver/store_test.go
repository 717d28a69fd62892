package foodserver

import (
	"testing"

	"foodadmin/internal/food"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewStore([]food.Food{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	assert.Error(t, err)
}

func TestStore_CreateAssignsIDsAfterSeed(t *testing.T) {
	s, err := NewStore([]food.Food{{ID: 4, Name: "a"}, {ID: 2, Name: "b"}})
	require.NoError(t, err)

	created := s.Create(food.Draft{Name: "c", Price: "1.00"})
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, 6, s.Create(food.Draft{Name: "d"}).ID)

	ids := []int{}
	for _, f := range s.List() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []int{4, 2, 5, 6}, ids)
}

func TestStore_IDsAreNotReused(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	first := s.Create(food.Draft{Name: "a"})
	require.NoError(t, s.Delete(first.ID))
	assert.Equal(t, first.ID+1, s.Create(food.Draft{Name: "b"}).ID)
}

func TestStore_UpdateKeepsPositionAndPathID(t *testing.T) {
	s, err := NewStore(DefaultMenu())
	require.NoError(t, err)

	updated, err := s.Update(2, food.Food{ID: 99, Name: "Veggie 2", Price: "22.00"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Veggie 2", s.List()[1].Name)

	_, err = s.Update(42, food.Food{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	s, err := NewStore(DefaultMenu())
	require.NoError(t, err)

	require.NoError(t, s.Delete(1))
	assert.Equal(t, 2, s.Len())
	assert.ErrorIs(t, s.Delete(1), ErrNotFound)

	_, err = s.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s, err := NewStore(DefaultMenu())
	require.NoError(t, err)

	list := s.List()
	list[0].Name = "mutated"
	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Ao molho", got.Name)
}
