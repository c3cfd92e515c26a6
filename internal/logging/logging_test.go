package logging

import "testing"

func TestNew_Development(t *testing.T) {
	log := New("development")
	if log.GetLevel().String() == "" {
		t.Fatal("expected a valid zerolog level")
	}
}

func TestNew_Production(t *testing.T) {
	log := New("production")
	if log.GetLevel().String() == "" {
		t.Fatal("expected a valid zerolog level")
	}
}
