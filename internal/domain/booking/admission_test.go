package booking

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

func TestSerializedKeepsCapacityUnderConcurrentCalls(t *testing.T) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := newTestScheduler(t, WithLogger(quiet))
	locked := NewSerialized(s)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locked.AddSchedule(context.Background(), models.Schedule{
				Time:      onTheHour,
				PartySize: 1,
				Customer:  customer,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, ErrCapacityExceeded):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if accepted != capacityPerHour || rejected != 20-capacityPerHour {
		t.Errorf("accepted=%d rejected=%d", accepted, rejected)
	}
	if len(locked.Schedules()) != capacityPerHour {
		t.Errorf("stored %d schedules", len(locked.Schedules()))
	}
	if !locked.HasSchedule(models.Schedule{Time: onTheHour.In(time.UTC), PartySize: 1, Customer: customer}) {
		t.Error("expected schedule to be found")
	}
}
