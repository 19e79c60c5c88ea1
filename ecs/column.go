package ecs

import "iter"

// column is the type-erased per-component storage of an archetype.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Compact() map[int]int
	Iter() iter.Seq[int]
}

const blockSize = 64

// blockColumn stores T values in fixed-size blocks so that pointers handed
// out by Get stay valid while the column grows. Deleted slots are recycled.
type blockColumn[T any] struct {
	blocks []*[blockSize]T
	live   []*[blockSize]bool
	free   []int
	next   int
}

func (c *blockColumn[T]) slot(index int) (int, int, bool) {
	if index < 0 {
		return 0, 0, false
	}
	b, s := index/blockSize, index%blockSize
	if b >= len(c.blocks) {
		return 0, 0, false
	}
	return b, s, true
}

func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.live = append(c.live, new([blockSize]bool))
		}
	}

	b, s := index/blockSize, index%blockSize
	c.blocks[b][s] = value
	c.live[b][s] = true
	return index
}

// Get returns a *T for a live slot, nil otherwise.
func (c *blockColumn[T]) Get(index int) any {
	b, s, ok := c.slot(index)
	if !ok || !c.live[b][s] {
		return nil
	}
	return &c.blocks[b][s]
}

func (c *blockColumn[T]) Delete(index int) {
	b, s, ok := c.slot(index)
	if !ok || !c.live[b][s] {
		return
	}
	var zero T
	c.blocks[b][s] = zero
	c.live[b][s] = false
	c.free = append(c.free, index)
}

func (c *blockColumn[T]) Has(index int) bool {
	b, s, ok := c.slot(index)
	return ok && c.live[b][s]
}

func (c *blockColumn[T]) Len() int {
	return c.next - len(c.free)
}

// Compact packs live slots to the front and returns old index -> new index.
func (c *blockColumn[T]) Compact() map[int]int {
	moved := make(map[int]int)
	count := c.Len()
	if count == 0 {
		c.blocks, c.live, c.free, c.next = nil, nil, nil, 0
		return moved
	}

	n := (count + blockSize - 1) / blockSize
	blocks := make([]*[blockSize]T, n)
	live := make([]*[blockSize]bool, n)
	for i := range blocks {
		blocks[i] = new([blockSize]T)
		live[i] = new([blockSize]bool)
	}

	write := 0
	for read := 0; read < c.next; read++ {
		rb, rs := read/blockSize, read%blockSize
		if !c.live[rb][rs] {
			continue
		}
		wb, ws := write/blockSize, write%blockSize
		blocks[wb][ws] = c.blocks[rb][rs]
		live[wb][ws] = true
		moved[read] = write
		write++
	}

	c.blocks, c.live, c.free, c.next = blocks, live, nil, write
	return moved
}

func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.next; i++ {
			if c.live[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
