// SPDX-License-Identifier: GPL-3.0-or-later

package spscqueue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyQueueIsEmpty(t *testing.T) {
	q := New[int]()
	assert.True(t, q.Empty())

	var out int
	assert.False(t, q.Pop(&out))
}

func TestPushPopSingleItem(t *testing.T) {
	q := New[int]()
	q.Push(42)
	assert.False(t, q.Empty())

	var out int
	require := assert.New(t)
	require.True(q.Pop(&out))
	require.Equal(42, out)
	require.True(q.Empty())
}

func TestFIFOOrdering(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	for i := 0; i < 10; i++ {
		var out int
		assert.True(t, q.Pop(&out))
		assert.Equal(t, i, out)
	}
	assert.True(t, q.Empty())
}

func TestPushBatchThenPop(t *testing.T) {
	q := New[int]()
	items := []int{1, 2, 3, 4, 5}
	q.PushBatch(items)

	for _, want := range items {
		var out int
		assert.True(t, q.Pop(&out))
		assert.Equal(t, want, out)
	}
	assert.True(t, q.Empty())
}

func TestPushBatchEmptyIsNoop(t *testing.T) {
	q := New[int]()
	q.PushBatch(nil)
	assert.True(t, q.Empty())
}

func TestPopBatch(t *testing.T) {
	q := New[int]()
	for i := 0; i < 7; i++ {
		q.Push(i)
	}

	out := make([]int, 4)
	n := q.PopBatch(out, 4)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{0, 1, 2, 3}, out)

	n = q.PopBatch(out, 4)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{4, 5, 6}, out[:n])

	n = q.PopBatch(out, 4)
	assert.Equal(t, 0, n)
}

func TestPopBatchRespectsOutSliceLength(t *testing.T) {
	q := New[int]()
	q.PushBatch([]int{1, 2, 3})

	out := make([]int, 2)
	n := q.PopBatch(out, 10)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 2}, out)
}

func TestInterleavedPushAndPop(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)

	var out int
	assert.True(t, q.Pop(&out))
	assert.Equal(t, 1, out)

	q.Push(3)

	assert.True(t, q.Pop(&out))
	assert.Equal(t, 2, out)
	assert.True(t, q.Pop(&out))
	assert.Equal(t, 3, out)
	assert.True(t, q.Empty())
}

// TestFIFOUnderLoad exercises a producer pushing [0, 100000] against a
// concurrent consumer draining the queue with pop_batch in a loop; the
// concatenation of batches must equal the pushed sequence.
func TestFIFOUnderLoad(t *testing.T) {
	const n = 100_001 // [0, 100000] inclusive
	q := New[int]()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(i)
		}
	}()

	got := make([]int, 0, n)
	buf := make([]int, 256)
	for len(got) < n {
		count := q.PopBatch(buf, len(buf))
		got = append(got, buf[:count]...)
	}
	wg.Wait()

	require := assert.New(t)
	require.Len(got, n)
	for i := 0; i < n; i++ {
		require.Equal(i, got[i])
	}
}

func TestFIFOUnderLoadWithBatchedProducer(t *testing.T) {
	const n = 50_000
	const batchSize = 128
	q := New[int]()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		batch := make([]int, 0, batchSize)
		for i := 0; i < n; i++ {
			batch = append(batch, i)
			if len(batch) == batchSize {
				q.PushBatch(batch)
				batch = batch[:0]
			}
		}
		if len(batch) > 0 {
			q.PushBatch(batch)
		}
	}()

	got := make([]int, 0, n)
	buf := make([]int, 64)
	for len(got) < n {
		count := q.PopBatch(buf, len(buf))
		got = append(got, buf[:count]...)
	}
	wg.Wait()

	require := assert.New(t)
	require.Len(got, n)
	for i := 0; i < n; i++ {
		require.Equal(i, got[i])
	}
}

func TestQueueOfStructs(t *testing.T) {
	type event struct {
		ID   int
		Name string
	}
	q := New[event]()
	q.Push(event{ID: 1, Name: "a"})
	q.Push(event{ID: 2, Name: "b"})

	var out event
	assert.True(t, q.Pop(&out))
	assert.Equal(t, event{ID: 1, Name: "a"}, out)
}
