package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) emit(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerEmitsOnlySettledValue(t *testing.T) {
	rec := &recorder{}
	d := New("", 30*time.Millisecond, rec.emit)
	defer d.Stop()

	d.Set("p")
	d.Set("pa")
	d.Set("par")

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"par"}, rec.snapshot())
	assert.Equal(t, "par", d.Value())
}

func TestDebouncerSwallowsUnchangedValue(t *testing.T) {
	rec := &recorder{}
	d := New("para", 20*time.Millisecond, rec.emit)
	defer d.Stop()

	d.Set("parac")
	d.Set("para")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerNoEmissionAfterStop(t *testing.T) {
	rec := &recorder{}
	d := New("", 20*time.Millisecond, rec.emit)

	d.Set("ibuprofeno")
	d.Stop()
	d.Set("paracetamol")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerDefaultWait(t *testing.T) {
	d := New(0, 0, func(int) {})
	defer d.Stop()
	assert.Equal(t, 0, d.Value())
}

func TestDebouncerResetAllowsRepeatingEarlierValue(t *testing.T) {
	rec := &recorder{}
	d := New("", 20*time.Millisecond, rec.emit)
	defer d.Stop()

	d.Set("tempra")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	d.Reset("")
	d.Set("tempra")

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"tempra", "tempra"}, rec.snapshot())
}

func TestDebouncerWaitsFullDurationAfterLastSet(t *testing.T) {
	const wait = 40 * time.Millisecond
	emitted := make(chan time.Time, 1)
	d := New("", wait, func(v string) {
		if v == "amox" {
			emitted <- time.Now()
		}
	})
	defer d.Stop()

	d.Set("a")
	time.Sleep(wait / 2)
	d.Set("am")
	time.Sleep(wait / 2)
	lastSet := time.Now()
	d.Set("amox")

	select {
	case at := <-emitted:
		assert.GreaterOrEqual(t, at.Sub(lastSet), wait)
	case <-time.After(time.Second):
		t.Fatal("settled value was never emitted")
	}
}
