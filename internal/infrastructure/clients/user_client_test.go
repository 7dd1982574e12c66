package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFindAllDecodesRemotePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find-all" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [
				{"id": 1, "fullName": "Rafael Andrade", "email": "rafa@gmail.com", "username": "rafa12", "role": "ROLE_CLIENT"},
				{"id": 2, "fullName": "Maria Silva", "email": "maria@gmail.com", "username": "mariaS", "role": "ROLE_ADMIN"}
			],
			"page": 0, "size": 10, "totalElements": 2, "totalPages": 1
		}`))
	}))
	defer srv.Close()

	client := NewUserClient(srv.URL, 2*time.Second, testLogger())
	page, err := client.FindAll(context.Background())
	if err != nil {
		t.Fatalf("findAll: %v", err)
	}
	if len(page.Content) != 2 || page.TotalElements != 2 || page.TotalPages != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Content[0].Username != "rafa12" || page.Content[1].Role != "ROLE_ADMIN" {
		t.Fatalf("unexpected content: %+v", page.Content)
	}
}

func TestFindAllFailsOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewUserClient(srv.URL, 2*time.Second, testLogger())
	if _, err := client.FindAll(context.Background()); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestFindAllFailsOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": "not-a-list"`))
	}))
	defer srv.Close()

	client := NewUserClient(srv.URL, 2*time.Second, testLogger())
	if _, err := client.FindAll(context.Background()); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestFindAllHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewUserClient(srv.URL, time.Minute, testLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.FindAll(ctx); err == nil {
		t.Fatal("expected an error once the context deadline passed")
	}
}
