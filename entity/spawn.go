package entity

// SpawnQueue collects entities created during an update pass. The World
// materialises them after every entity has been updated.
type SpawnQueue struct {
	items []Entity
}

// Push queues e. nil entities are ignored.
func (q *SpawnQueue) Push(e Entity) {
	if q == nil || e == nil {
		return
	}
	q.items = append(q.items, e)
}

// Len returns the number of queued entities.
func (q *SpawnQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns the queued entities in push order and clears the queue.
func (q *SpawnQueue) Drain() []Entity {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
