package serialmux

import (
	"context"
	"testing"
	"time"
)

func TestSendCommandAppendsNewline(t *testing.T) {
	port := &MockSerialPort{}
	mux := NewSerialMux[*MockSerialPort](port)

	if err := mux.SendCommand("PING"); err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if got := string(port.WrittenData); got != "PING\n" {
		t.Errorf("got %q, want %q", got, "PING\n")
	}

	port.WrittenData = nil
	if err := mux.SendCommand("PING\n"); err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if got := string(port.WrittenData); got != "PING\n" {
		t.Errorf("got %q, want no duplicated newline", got)
	}
}

func TestSendCommandWriteError(t *testing.T) {
	wantErr := ErrWriteFailed
	port := &MockSerialPort{WriteError: wantErr}
	mux := NewSerialMux[*MockSerialPort](port)

	if err := mux.SendCommand("X"); err != wantErr {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

func TestMonitorFansOutLinesToSubscribers(t *testing.T) {
	port := &MockSerialPort{ReadData: []byte("one\ntwo\nthree\n")}
	mux := NewSerialMux[*MockSerialPort](port)

	_, ch1 := mux.Subscribe()
	_, ch2 := mux.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- mux.Monitor(ctx) }()

	for _, want := range []string{"one", "two", "three"} {
		select {
		case got := <-ch1:
			if got != want {
				t.Errorf("ch1: got %q, want %q", got, want)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for line on ch1")
		}
		select {
		case got := <-ch2:
			if got != want {
				t.Errorf("ch2: got %q, want %q", got, want)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for line on ch2")
		}
	}

	cancel()
	<-done
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	port := &MockSerialPort{}
	mux := NewSerialMux[*MockSerialPort](port)

	id, ch := mux.Subscribe()
	mux.Unsubscribe(id)

	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed after Unsubscribe")
	}
}

func TestCloseClosesPortAndSubscribers(t *testing.T) {
	port := &MockSerialPort{}
	mux := NewSerialMux[*MockSerialPort](port)

	_, ch := mux.Subscribe()

	if err := mux.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !port.Closed {
		t.Error("expected underlying port to be closed")
	}
	if _, ok := <-ch; ok {
		t.Error("expected subscriber channel to be closed")
	}
}

func TestPortOptionsNormalizeDefaults(t *testing.T) {
	opts, err := PortOptions{}.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if opts.BaudRate != 9600 || opts.DataBits != 8 || opts.StopBits != 1 || opts.Parity != "N" {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestPortOptionsNormalizeRejectsInvalid(t *testing.T) {
	if _, err := (PortOptions{DataBits: 9}).Normalize(); err == nil {
		t.Error("expected error for out-of-range data bits")
	}
	if _, err := (PortOptions{Parity: "X"}).Normalize(); err == nil {
		t.Error("expected error for invalid parity")
	}
}
