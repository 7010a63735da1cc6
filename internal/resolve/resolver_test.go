package resolve

import (
	"context"
	"net/url"
	"testing"

	"github.com/electrical-elites/wishlink/internal/codec"
	"github.com/electrical-elites/wishlink/internal/db"
	"github.com/electrical-elites/wishlink/internal/defaults"
	"github.com/electrical-elites/wishlink/internal/payload"
)

var baseDefaults = payload.Payload{
	GroupName:  "Electrical Elites",
	Greeting:   "Merry X-mas and a very Happy New Year!",
	GroupPhoto: "https://cdn.example.com/group.png",
	AudioURL:   "https://cdn.example.com/song.mp3",
}

func setupStore(t *testing.T) *defaults.Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return defaults.NewStore(database)
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", raw, err)
	}
	return u
}

func TestResolveBareURLGivesDefaults(t *testing.T) {
	r := New(baseDefaults, "wish", setupStore(t))

	p, err := r.Resolve(context.Background(), mustParse(t, "https://example.com/"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p != baseDefaults {
		t.Errorf("got %+v, want defaults", p)
	}
	if p.HasRecipient() {
		t.Error("expected authoring view")
	}
}

func TestResolveOverlaysStoredDefaults(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	store.Save(ctx, defaults.Record{GroupName: "Night Shift", Sender: "Uthuman"})

	r := New(baseDefaults, "wish", store)
	p, err := r.Resolve(ctx, mustParse(t, "https://example.com/"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.GroupName != "Night Shift" {
		t.Errorf("groupName: got %q", p.GroupName)
	}
	if p.Sender != "Uthuman" {
		t.Errorf("sender: got %q", p.Sender)
	}
	// Fields absent from the stored record keep the process defaults.
	if p.Greeting != baseDefaults.Greeting {
		t.Errorf("greeting: got %q", p.Greeting)
	}
	if p.HasRecipient() {
		t.Error("stored defaults must never produce a recipient view")
	}
}

func TestResolvePathEncoding(t *testing.T) {
	r := New(baseDefaults, "wish", setupStore(t))

	p, err := r.Resolve(context.Background(), mustParse(t, "https://example.com/wish/Uthuman/Aisha"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Sender != "Uthuman" || p.Recipient != "Aisha" {
		t.Errorf("got %+v", p)
	}
	if !p.HasRecipient() {
		t.Error("expected recipient view")
	}
}

func TestResolveQueryWithoutSender(t *testing.T) {
	r := New(baseDefaults, "wish", setupStore(t))

	p, err := r.Resolve(context.Background(), mustParse(t, "https://example.com/wish?recipient=Aisha"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Recipient != "Aisha" || p.Sender != "" {
		t.Errorf("got %+v", p)
	}
}

func TestResolvePrecedencePathBeatsQuery(t *testing.T) {
	r := New(baseDefaults, "wish", setupStore(t))

	p, err := r.Resolve(context.Background(), mustParse(t, "https://example.com/wish/Uthuman/Aisha?recipient=Bilal"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Recipient != "Aisha" {
		t.Errorf("expected path recipient, got %q", p.Recipient)
	}
}

func TestResolveFragmentCarriesOverrides(t *testing.T) {
	frag := codec.EncodeFragment(payload.Payload{
		GroupName: "Holiday Crew",
		Greeting:  "Happy Holidays!",
		Recipient: "Aisha",
	})
	r := New(baseDefaults, "wish", setupStore(t))

	p, err := r.Resolve(context.Background(), mustParse(t, "https://example.com/wish#"+frag))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.GroupName != "Holiday Crew" || p.Greeting != "Happy Holidays!" || p.Recipient != "Aisha" {
		t.Errorf("got %+v", p)
	}
	// Fields the fragment omitted keep their defaults.
	if p.AudioURL != baseDefaults.AudioURL {
		t.Errorf("audioUrl: got %q", p.AudioURL)
	}
}

func TestResolveMalformedFragmentFallsThrough(t *testing.T) {
	r := New(baseDefaults, "wish", setupStore(t))

	p, err := r.Resolve(context.Background(), mustParse(t, "https://example.com/wish#not-base64!!!"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p != baseDefaults {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestResolveIdempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	store.Save(ctx, defaults.Record{Sender: "Uthuman"})
	r := New(baseDefaults, "wish", store)
	u := mustParse(t, "https://example.com/wish?recipient=Aisha")

	first, err := r.Resolve(ctx, u)
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := r.Resolve(ctx, u)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first != second {
		t.Errorf("expected identical payloads: %+v vs %+v", first, second)
	}
}

func TestResolveNilStore(t *testing.T) {
	r := New(baseDefaults, "wish", nil)

	p, err := r.Resolve(context.Background(), mustParse(t, "https://example.com/wish/Uthuman/Aisha"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Recipient != "Aisha" {
		t.Errorf("got %+v", p)
	}
}
