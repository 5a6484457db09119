package a11yinfo

import (
	"context"
	"testing"
	"time"
)

func TestPending_SettlesOnce(t *testing.T) {
	p := newPending[bool]()
	p.resolve(true)
	p.reject(false) // ignored: already settled

	got, err := p.Await(context.Background())
	if err != nil || got != true {
		t.Errorf("got (%v, %v), want (true, nil)", got, err)
	}
}

func TestPending_RejectWins(t *testing.T) {
	p := newPending[bool]()
	p.reject(false)
	p.resolve(true) // ignored

	_, err := p.Await(context.Background())
	if err == nil {
		t.Fatal("expected rejection")
	}
}

func TestPending_AwaitHonorsContext(t *testing.T) {
	// A pending whose callback never fires never settles; Await must
	// return once the context expires.
	p := newPending[bool]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Await(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestPending_LateSettleAfterAwait(t *testing.T) {
	p := newPending[int64]()
	go func() {
		time.Sleep(5 * time.Millisecond)
		p.resolve(250)
	}()

	got, err := p.Await(context.Background())
	if err != nil || got != 250 {
		t.Errorf("got (%d, %v), want (250, nil)", got, err)
	}
}
