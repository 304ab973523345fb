package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublishFillsDefaults(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisherWithWriter(w, "docs")

	err := p.Publish(context.Background(), DocumentEvent{
		Kind:          KindReceipt,
		FileName:      "Donation_Receipt_TXN1.pdf",
		TransactionID: "TXN1",
		Size:          2048,
	})
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("got %d messages", len(w.msgs))
	}

	msg := w.msgs[0]
	if string(msg.Key) != "TXN1" {
		t.Errorf("key = %q", msg.Key)
	}

	var got DocumentEvent
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Errorf("id %q is not a uuid", got.ID)
	}
	if got.Type != EventDocumentGenerated || got.GeneratedAt.IsZero() {
		t.Errorf("event = %+v", got)
	}
	if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != EventDocumentGenerated {
		t.Errorf("headers = %v", msg.Headers)
	}
}

func TestPublishKeepsGivenFields(t *testing.T) {
	w := &fakeWriter{}
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ev := DocumentEvent{ID: "fixed", Kind: KindReport, DonorEmail: "asha@example.com", GeneratedAt: at}

	if err := newPublisherWithWriter(w, "docs").Publish(context.Background(), ev); err != nil {
		t.Fatal(err)
	}

	var got DocumentEvent
	json.Unmarshal(w.msgs[0].Value, &got)
	if got.ID != "fixed" || !got.GeneratedAt.Equal(at) {
		t.Errorf("event = %+v", got)
	}
	if string(w.msgs[0].Key) != "asha@example.com" {
		t.Errorf("key = %q", w.msgs[0].Key)
	}
}

func TestPublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newPublisherWithWriter(w, "docs")
	if err := p.Publish(context.Background(), DocumentEvent{}); err == nil {
		t.Error("expected error")
	}
	if err := p.Close(); err != nil || !w.closed {
		t.Error("Close should close the writer")
	}
}

func TestNewPublisherWithoutBrokers(t *testing.T) {
	p := NewPublisher(nil, "docs")
	if _, ok := p.(Noop); !ok {
		t.Fatalf("got %T, want Noop", p)
	}
	if err := p.Publish(context.Background(), DocumentEvent{}); err != nil {
		t.Error(err)
	}
}

func TestEventKey(t *testing.T) {
	tests := []struct {
		ev   DocumentEvent
		want string
	}{
		{DocumentEvent{ID: "x", TransactionID: "T", DonorEmail: "e"}, "e"},
		{DocumentEvent{ID: "x", TransactionID: "T"}, "T"},
		{DocumentEvent{ID: "x"}, "x"},
	}
	for _, tt := range tests {
		if got := tt.ev.Key(); got != tt.want {
			t.Errorf("Key() = %q, want %q", got, tt.want)
		}
	}
}
