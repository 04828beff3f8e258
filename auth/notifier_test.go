package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierPublishReachesSubscribers(t *testing.T) {
	t.Parallel()

	n := NewNotifier()

	var got []bool
	unsubscribe := n.Subscribe(func(signedIn bool) { got = append(got, signedIn) })
	defer unsubscribe()

	n.Publish(true)
	n.Publish(false)

	assert.Equal(t, []bool{true, false}, got)
}

func TestNotifierUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	n := NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func(bool) { calls++ })

	n.Publish(true)
	unsubscribe()
	n.Publish(false)

	assert.Equal(t, 1, calls)
}

func TestNotifierUnsubscribeIdempotent(t *testing.T) {
	t.Parallel()

	n := NewNotifier()

	first := 0
	second := 0
	unsubFirst := n.Subscribe(func(bool) { first++ })
	unsubSecond := n.Subscribe(func(bool) { second++ })

	unsubFirst()
	unsubFirst() // releasing twice must not disturb other subscriptions

	n.Publish(true)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	unsubSecond()
}

func TestNotifierDeliversInRegistrationOrder(t *testing.T) {
	t.Parallel()

	n := NewNotifier()

	var order []int
	for i := 1; i <= 3; i++ {
		defer n.Subscribe(func(bool) { order = append(order, i) })()
	}

	n.Publish(true)
	assert.Equal(t, []int{1, 2, 3}, order)
}
