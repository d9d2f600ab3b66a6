package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTablePutGet(t *testing.T) {
	tbl := newHandleTable()

	id := tbl.put("alpha")
	assert.Equal(t, uintptr(1), id, "ids start at 1 so 0 stays invalid")
	assert.Equal(t, "alpha", tbl.get(id))

	id2 := tbl.put("beta")
	assert.NotEqual(t, id, id2)
	assert.Equal(t, 2, tbl.size())
}

func TestHandleTableStaleID(t *testing.T) {
	tbl := newHandleTable()
	assert.Nil(t, tbl.get(0))
	assert.Nil(t, tbl.get(42))
}

func TestHandleTableTake(t *testing.T) {
	tbl := newHandleTable()
	id := tbl.put("alpha")

	require.Equal(t, "alpha", tbl.take(id))
	assert.Nil(t, tbl.get(id), "taken ids are stale")
	assert.Nil(t, tbl.take(id), "double free is a no-op")
	assert.Equal(t, 0, tbl.size())
}

func TestHandleTableNeverReusesIDs(t *testing.T) {
	tbl := newHandleTable()
	first := tbl.put("a")
	tbl.take(first)
	second := tbl.put("b")
	assert.NotEqual(t, first, second)
}
