package store

import (
	"bytes"
	"errors"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	s := New()
	pdf := []byte("%PDF-1.7 fake content")

	id := s.Put(pdf)
	if id == "" {
		t.Fatal("empty id")
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, pdf) {
		t.Errorf("Get = %q, want %q", got, pdf)
	}
}

func TestPutIsContentAddressed(t *testing.T) {
	s := New()
	a := s.Put([]byte("same bytes"))
	b := s.Put([]byte("same bytes"))
	c := s.Put([]byte("other bytes"))

	if a != b {
		t.Errorf("same content produced different ids: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different content produced the same id: %s", a)
	}
}

func TestGetUnknown(t *testing.T) {
	s := New()
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get unknown = %v, want ErrNotFound", err)
	}
}

func TestRemoveDropsPreviews(t *testing.T) {
	s := New()
	id := s.Put([]byte("doc"))
	if err := s.PutPreview(id, 0, Preview{PNG: []byte("png"), Width: 10, Height: 20}); err != nil {
		t.Fatalf("PutPreview: %v", err)
	}

	if !s.Remove(id) {
		t.Error("Remove reported missing id")
	}
	if s.Remove(id) {
		t.Error("second Remove should report false")
	}
	if _, err := s.Preview(id, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Preview after Remove = %v, want ErrNotFound", err)
	}
}

func TestPreviewRequiresSource(t *testing.T) {
	s := New()
	err := s.PutPreview("ghost", 0, Preview{PNG: []byte("png")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("PutPreview without source = %v, want ErrNotFound", err)
	}
}

func TestPreviews(t *testing.T) {
	s := New()
	id := s.Put([]byte("doc"))
	for page := 0; page < 3; page++ {
		if err := s.PutPreview(id, page, Preview{Width: page}); err != nil {
			t.Fatalf("PutPreview %d: %v", page, err)
		}
	}

	got := s.Previews(id)
	if len(got) != 3 {
		t.Fatalf("Previews = %d entries, want 3", len(got))
	}
	if got[2].Width != 2 {
		t.Errorf("preview 2 = %+v", got[2])
	}

	// Mutating the copy must not touch the store.
	delete(got, 0)
	if len(s.Previews(id)) != 3 {
		t.Error("Previews returned shared state")
	}
}
