package defaults

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/electrical-elites/wishlink/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestGetMissingRecord(t *testing.T) {
	store := setupTestStore(t)

	rec, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}
}

func TestSaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rec := Record{
		GroupName: "Electrical Elites",
		Greeting:  "Happy Holidays!",
		Sender:    "Uthuman",
		AudioURL:  "https://cdn.example.com/song.mp3",
	}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fetched, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected a record")
	}
	if fetched.GroupName != rec.GroupName || fetched.Sender != rec.Sender {
		t.Errorf("got %+v", fetched)
	}
	if fetched.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set")
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	store.Save(ctx, Record{GroupName: "First", Sender: "Uthuman"})
	if err := store.Save(ctx, Record{GroupName: "Second"}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	fetched, _ := store.Get(ctx)
	if fetched.GroupName != "Second" {
		t.Errorf("expected overwrite, got %q", fetched.GroupName)
	}
	// A full overwrite clears fields absent from the new record.
	if fetched.Sender != "" {
		t.Errorf("expected sender cleared, got %q", fetched.Sender)
	}
}

func TestRoutes(t *testing.T) {
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)

	// GET before any save returns an empty record, not an error.
	req := httptest.NewRequest(http.MethodGet, "/api/defaults/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("GET status: %d", rr.Code)
	}
	var rec Record
	if err := json.NewDecoder(rr.Body).Decode(&rec); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if rec.GroupName != "" {
		t.Errorf("expected empty record, got %+v", rec)
	}

	// PUT then GET round-trips.
	body := `{"groupName":"Electrical Elites","greeting":"Happy Holidays!","sender":"Uthuman"}`
	req = httptest.NewRequest(http.MethodPut, "/api/defaults/", strings.NewReader(body))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("PUT status: %d, body %s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/defaults/", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if err := json.NewDecoder(rr.Body).Decode(&rec); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if rec.Greeting != "Happy Holidays!" || rec.Sender != "Uthuman" {
		t.Errorf("got %+v", rec)
	}

	// Bad body is a 400.
	req = httptest.NewRequest(http.MethodPut, "/api/defaults/", strings.NewReader("{"))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad body status: %d", rr.Code)
	}
}

func TestRoutesErrorBodyIsJSON(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, NewStore(database))

	// Force a store failure; whatever the driver says must still come
	// back as a parseable error body.
	database.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/defaults/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not valid JSON: %v (%s)", err, rr.Body.String())
	}
	if body["error"] == "" {
		t.Error("expected an error message")
	}
}
