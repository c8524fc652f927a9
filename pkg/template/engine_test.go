package template

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/getchurch/church/pkg/provider"
	"github.com/getchurch/church/pkg/resolver"
)

func testGeneric(t *testing.T, loc string, seed uint64) *provider.Generic {
	t.Helper()
	store := fstest.MapFS{
		"en_us/fruits":   {Data: []byte("Apple\nBanana\nCherry\n")},
		"en_us/cities":   {Data: []byte("Springfield\n")},
		"en_us/f_names":  {Data: []byte("Anna Maria\n")},
		"en_us/m_names":  {Data: []byte("Jean Luc\n")},
		"en_us/surnames": {Data: []byte("Picard\n")},
		"tr_tr/cities":   {Data: []byte("istanbul\n")},
		"tr_tr/f_names":  {Data: []byte("Ayşe\n")},
		"tr_tr/m_names":  {Data: []byte("Ali\n")},
		"tr_tr/surnames": {Data: []byte("Yılmaz\n")},
	}
	r, err := resolver.New(store)
	if err != nil {
		t.Fatalf("resolver.New() error = %v", err)
	}
	return provider.New(provider.WithResolver(r), provider.WithLocale(loc), provider.WithSeed(seed))
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(testGeneric(t, "en_us", 1))
}

// =============================================================================
// Field Tests
// =============================================================================

func TestProviderFields(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Process("{{personal.full_name}} lives in {{ address.city }} and eats {{food.fruit}}.")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	pattern := regexp.MustCompile(`^(Anna Maria|Jean Luc) Picard lives in Springfield and eats (Apple|Banana|Cherry)\.$`)
	if !pattern.MatchString(result) {
		t.Errorf("unexpected result %q", result)
	}
}

func TestUnknownExpression(t *testing.T) {
	engine := newTestEngine(t)

	tests := []string{
		"{{address.moon}}",
		"{{request.body.name}}",
		"{{shout(address.city)}}",
		"{{upper(nope)}}",
		"{{default(nope, \"x\")}}",
	}
	for _, tmpl := range tests {
		t.Run(tmpl, func(t *testing.T) {
			_, err := engine.Process(tmpl)
			if !errors.Is(err, ErrUnknownExpression) {
				t.Errorf("Process(%q) error = %v, want ErrUnknownExpression", tmpl, err)
			}
		})
	}
}

func TestFieldFailure(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Process("ok {{food.fruit}} then {{personal.profession}}")
	if !errors.Is(err, resolver.ErrDatasetNotFound) {
		t.Fatalf("Process() error = %v, want ErrDatasetNotFound", err)
	}
	if !strings.Contains(err.Error(), "personal.profession") {
		t.Errorf("error should name the expression: %v", err)
	}
}

func TestNoPlaceholders(t *testing.T) {
	engine := newTestEngine(t)

	for _, tmpl := range []string{"", "plain text", "{ not } a {template}"} {
		result, err := engine.Process(tmpl)
		if err != nil {
			t.Fatalf("Process(%q) error = %v", tmpl, err)
		}
		if result != tmpl {
			t.Errorf("Process(%q) = %q, want unchanged", tmpl, result)
		}
	}
}

// =============================================================================
// Random Tests
// =============================================================================

func TestRandomInt(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		template string
		min      int
		max      int
	}{
		{"no args", "{{random.int}}", 0, 100},
		{"basic range", "{{random.int(1, 100)}}", 1, 100},
		{"tight range", "{{random.int(5, 5)}}", 5, 5},
		{"negative", "{{random.int(-10, -5)}}", -10, -5},
		{"reversed", "{{random.int(9, 3)}}", 3, 9},
		{"with spaces", "{{ random.int(1, 50) }}", 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Process(tt.template)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			n, err := strconv.Atoi(result)
			if err != nil {
				t.Fatalf("result should be integer, got %q: %v", result, err)
			}
			if n < tt.min || n > tt.max {
				t.Errorf("result %d not in range [%d, %d]", n, tt.min, tt.max)
			}
		})
	}
}

func TestRandomFloat(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("basic range", func(t *testing.T) {
		result, err := engine.Process("{{random.float(1.0, 10.0)}}")
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		f, err := strconv.ParseFloat(result, 64)
		if err != nil {
			t.Fatalf("result should be float, got %q: %v", result, err)
		}
		if f < 1.0 || f > 10.0 {
			t.Errorf("result %f not in range [1.0, 10.0]", f)
		}
	})

	t.Run("with precision", func(t *testing.T) {
		result, err := engine.Process("{{random.float(0.0, 100.0, 2)}}")
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		parts := strings.Split(result, ".")
		if len(parts) != 2 || len(parts[1]) != 2 {
			t.Errorf("expected 2 decimal places, got %q", result)
		}
	})
}

func TestRandomString(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Process("{{random.string}}|{{random.string(4)}}|{{random.string(0)}}")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !regexp.MustCompile(`^[A-Za-z0-9]{10}\|[A-Za-z0-9]{4}\|$`).MatchString(result) {
		t.Errorf("unexpected result %q", result)
	}
}

func TestUUID(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Process("{{uuid}} {{uuid.short}}")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12} [0-9a-f]{8}$`)
	if !pattern.MatchString(result) {
		t.Errorf("unexpected uuid output %q", result)
	}
}

func TestUUID_Unseeded(t *testing.T) {
	id, err := rngUUID(nil)
	if err != nil {
		t.Fatalf("rngUUID(nil) error = %v", err)
	}
	other, _ := rngUUID(nil)
	if id == other {
		t.Errorf("unseeded UUIDs should differ: %s", id)
	}
}

// =============================================================================
// Function Tests
// =============================================================================

func TestCaseFunctions(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		tmpl   string
		want   string
	}{
		{"upper field", "en_us", "{{upper(address.city)}}", "SPRINGFIELD"},
		{"lower literal", "en_us", `{{lower("HELLO")}}`, "hello"},
		{"single quotes", "en_us", "{{upper('abc')}}", "ABC"},
		{"turkish dotted i", "tr_tr", "{{upper(address.city)}}", "İSTANBUL"},
		{"turkish dotless i", "tr_tr", `{{lower("I")}}`, "ı"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(testGeneric(t, tt.locale, 1))
			got, err := engine.Process(tt.tmpl)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		tmpl string
		want string
	}{
		{`{{default("", "fallback")}}`, "fallback"},
		{`{{default("value", "fallback")}}`, "value"},
		{`{{default(address.city, "nowhere")}}`, "Springfield"},
		{`{{default(personal.profession, "unemployed")}}`, "unemployed"},
		{`{{default("", "a, b")}}`, "a, b"},
	}

	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			got, err := engine.Process(tt.tmpl)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}

	if _, err := engine.Process(`{{default("only one")}}`); err == nil {
		t.Error("default with one argument should fail")
	}
}

func TestSplitFuncArgs(t *testing.T) {
	got := splitFuncArgs(`a, "b, c", 'd'`)
	want := []string{"a", `"b, c"`, "'d'"}
	if len(got) != len(want) {
		t.Fatalf("splitFuncArgs() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// =============================================================================
// Sequence Tests
// =============================================================================

func TestSequence(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Process(`{{sequence("id")}},{{sequence("id")}},{{sequence("other", 100)}},{{sequence("id")}}`)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if result != "1,2,100,3" {
		t.Errorf("Process() = %q, want %q", result, "1,2,100,3")
	}
}

func TestSequence_SharedStore(t *testing.T) {
	store := NewSequenceStore()
	a := New(testGeneric(t, "en_us", 1), WithSequences(store))
	b := New(testGeneric(t, "en_us", 2), WithSequences(store))

	if got, _ := a.Process(`{{sequence("row")}}`); got != "1" {
		t.Errorf("first = %q, want 1", got)
	}
	if got, _ := b.Process(`{{sequence("row")}}`); got != "2" {
		t.Errorf("second = %q, want 2", got)
	}
	if v, ok := store.Current("row"); !ok || v != 3 {
		t.Errorf("Current() = %d, %v; want 3, true", v, ok)
	}

	store.Reset("row")
	if _, ok := store.Current("row"); ok {
		t.Error("sequence should be gone after Reset")
	}
}

func TestSequence_Concurrent(t *testing.T) {
	engine := newTestEngine(t)

	const n = 50
	seen := make(map[string]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := engine.Process(`{{sequence("c")}}`)
			if err != nil {
				t.Errorf("Process() error = %v", err)
				return
			}
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("expected %d distinct values, got %d", n, len(seen))
	}
}
