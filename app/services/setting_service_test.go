package services

import (
	"testing"

	"weldwatch/app/notify"
)

func TestSettingSaveCreatesThenUpdates(t *testing.T) {
	fx := newFixture(t)
	svc := NewSettingService(fx.settings, fx.notifier)

	got, err := svc.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("setting = %+v, want nil before first save", got)
	}

	id, ch := fx.notifier.Subscribe()
	defer fx.notifier.Unsubscribe(id)

	saved, err := svc.Save("/data/records")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.RecordDir != "/data/records" {
		t.Fatalf("saved = %+v", saved)
	}

	select {
	case evt := <-ch:
		if evt.Name != notify.EventInfoNotice {
			t.Fatalf("event = %+v, want info notice", evt)
		}
	default:
		t.Fatal("expected restart notice after save")
	}

	updated, err := svc.Save("/data/elsewhere")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != saved.ID {
		t.Fatal("update created a second setting row")
	}

	got, err = svc.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RecordDir != "/data/elsewhere" {
		t.Fatalf("setting = %+v", got)
	}
}
