package load

// Partition splits items into consecutive batches of at most capacity items:
// ceil(len(items)/capacity) batches, original order preserved.
func Partition[T any](items []T, capacity int) [][]T {
	if capacity <= 0 || len(items) == 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+capacity-1)/capacity)
	for start := 0; start < len(items); start += capacity {
		end := min(start+capacity, len(items))
		batches = append(batches, items[start:end])
	}

	return batches
}
