package storage

import (
	"sync"
	"testing"
)

func TestBrokerSubscribePublish(t *testing.T) {
	var b Broker

	var got []Collection
	cancel := b.Subscribe(func(c Collection) { got = append(got, c) })

	b.Publish(CollectionWorkouts)
	b.Publish(CollectionLogs)

	if len(got) != 2 || got[0] != CollectionWorkouts || got[1] != CollectionLogs {
		t.Errorf("received %v, want [workouts logs]", got)
	}

	cancel()
	b.Publish(CollectionBodyweight)
	if len(got) != 2 {
		t.Errorf("received notification after cancel: %v", got)
	}
}

func TestBrokerMultipleSubscribers(t *testing.T) {
	var b Broker

	first, second := 0, 0
	b.Subscribe(func(Collection) { first++ })
	cancel := b.Subscribe(func(Collection) { second++ })

	b.Publish(CollectionWorkouts)
	cancel()
	b.Publish(CollectionWorkouts)

	if first != 2 {
		t.Errorf("first subscriber saw %d notifications, want 2", first)
	}
	if second != 1 {
		t.Errorf("second subscriber saw %d notifications, want 1", second)
	}
}

func TestBrokerPublishWithoutSubscribers(t *testing.T) {
	var b Broker
	// Must not panic
	b.Publish(CollectionWorkouts)
}

func TestBrokerConcurrentSubscribe(t *testing.T) {
	var b Broker
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cancel := b.Subscribe(func(Collection) {})
			b.Publish(CollectionLogs)
			cancel()
		}()
	}
	wg.Wait()
}
