package authevents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpersona/console/internal/authevents"
)

func TestBus(t *testing.T) {
	t.Run("All listeners fire exactly once per emit", func(t *testing.T) {
		bus := authevents.NewBus()

		counts := make([]int, 3)
		for i := range counts {
			i := i
			bus.SubscribeUnauthorized(func() { counts[i]++ })
		}

		bus.EmitUnauthorized()

		for i, count := range counts {
			assert.Equal(t, 1, count, "listener %d should fire exactly once", i)
		}
	})

	t.Run("A panicking listener does not block the others", func(t *testing.T) {
		bus := authevents.NewBus()

		var before, after bool
		bus.SubscribeUnauthorized(func() { before = true })
		bus.SubscribeUnauthorized(func() { panic("listener blew up") })
		bus.SubscribeUnauthorized(func() { after = true })

		assert.NotPanics(t, func() { bus.EmitUnauthorized() }, "emit should absorb listener panics")
		assert.True(t, before, "listener before the panic should have fired")
		assert.True(t, after, "listener after the panic should have fired")
	})

	t.Run("Unsubscribe removes only the targeted listener", func(t *testing.T) {
		bus := authevents.NewBus()

		var kept, removed int
		bus.SubscribeUnauthorized(func() { kept++ })
		unsubscribe := bus.SubscribeUnauthorized(func() { removed++ })

		bus.EmitUnauthorized()
		unsubscribe()
		bus.EmitUnauthorized()

		assert.Equal(t, 2, kept, "remaining listener should fire on both emits")
		assert.Equal(t, 1, removed, "unsubscribed listener should not fire again")
	})

	t.Run("Nil listener is ignored", func(t *testing.T) {
		bus := authevents.NewBus()
		unsubscribe := bus.SubscribeUnauthorized(nil)

		assert.NotPanics(t, func() {
			bus.EmitUnauthorized()
			unsubscribe()
		})
	})

	t.Run("Emit with no listeners is a no-op", func(t *testing.T) {
		bus := authevents.NewBus()
		assert.NotPanics(t, func() { bus.EmitUnauthorized() })
	})
}
