package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewRejectsBadExpression(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "nightly", expr: "0 3 * * *"},
		{name: "every five minutes", expr: "*/5 * * * *"},
		{name: "garbage", expr: "not a cron", wantErr: true},
		{name: "too many fields", expr: "0 0 3 * * * *", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.expr, func() error { return nil })
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
		})
	}
}

func TestTickCountsFailures(t *testing.T) {
	calls := 0
	r, err := New("0 3 * * *", func() error {
		calls++
		if calls%2 == 0 {
			return errors.New("database is locked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 0; i < 4; i++ {
		r.tick()
	}

	if r.Runs() != 4 || r.Failures() != 2 {
		t.Errorf("Runs() = %d, Failures() = %d, want 4 and 2", r.Runs(), r.Failures())
	}
}

func TestRunNow(t *testing.T) {
	done := make(chan struct{}, 1)
	r, err := New("0 3 * * *", func() error {
		done <- struct{}{}
		return nil
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r.Start()
	defer r.Stop()

	if next := r.NextRun(); !next.After(time.Now()) {
		t.Errorf("NextRun() = %v, want a future time", next)
	}

	r.RunNow()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunNow() did not trigger a run")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r, err := New("0 3 * * *", func() error { return nil })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(finished)
	}()

	cancel()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
