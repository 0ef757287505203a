package guard_test

import (
	"context"
	"fmt"
	"time"

	"kit/guard"
)

func ExampleGuard() {
	g, err := guard.New(2)
	if err != nil {
		panic(err)
	}

	a, _ := g.Acquire()
	b, _ := g.Acquire()
	fmt.Println(g)

	_, ok, err := g.TryAcquire(10 * time.Millisecond)
	fmt.Println(ok, err)

	_ = a.Release()
	_ = b.Release()
	fmt.Println(g)
	// Output:
	// Guard(0/2 free)
	// false <nil>
	// Guard(2/2 free)
}

func ExampleGuarded_Do() {
	counter := guard.Exclusive(0)

	_ = counter.Do(context.Background(), func(h *guard.Handle[int]) error {
		v, err := h.Value()
		if err != nil {
			return err
		}
		return h.Set(v + 1)
	})

	h, _ := counter.Acquire()
	defer h.Release()
	v, _ := h.Value()
	fmt.Println(v)
	// Output: 1
}
