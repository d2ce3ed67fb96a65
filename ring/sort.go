package ring

// SortAscending reorders the digit values in place so that every position
// holds a digit no larger than the next. Digit values move between slots;
// ties keep their relative order. The numeric value is re-derived once,
// after sorting completes.
//
// Passes of adjacent compare-and-swap repeat until one completes with no
// swap. O(n²) worst case, which is fine at digit counts.
func (r *Ring) SortAscending() {
	r.sort(func(a, b byte) bool { return a > b })
}

// SortDescending is SortAscending with the order reversed.
func (r *Ring) SortDescending() {
	r.sort(func(a, b byte) bool { return a < b })
}

func (r *Ring) sort(misordered func(a, b byte) bool) {
	if r.size < 2 {
		return
	}

	r.mutate(func() {
		for {
			swapped := false

			curr := r.head
			for i := 0; i < r.size-1; i++ {
				next := r.slots[curr].next
				if misordered(r.slots[curr].digit, r.slots[next].digit) {
					r.slots[curr].digit, r.slots[next].digit = r.slots[next].digit, r.slots[curr].digit
					swapped = true
				}
				curr = next
			}

			if !swapped {
				break
			}
		}
	})
}
