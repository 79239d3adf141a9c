package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"redpoint/internal/catalog"
)

type errSource struct{ err error }

func (s errSource) Paths() ([]string, error) { return nil, s.err }

func newInitializedBadges(t *testing.T) *Badges {
	t.Helper()
	b := NewBadges(catalog.NewStatic())
	if err := b.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return b
}

func TestBadges_Initialize(t *testing.T) {
	t.Run("builds catalog tree", func(t *testing.T) {
		b := newInitializedBadges(t)

		if !b.Initialized() {
			t.Fatal("expected badges to be initialized")
		}
		for _, p := range catalog.AllPaths {
			if !b.HasNode(p) {
				t.Errorf("expected %s to exist", p)
			}
		}
	})

	t.Run("second call is rejected", func(t *testing.T) {
		b := newInitializedBadges(t)
		b.SetRedpoint(catalog.ModelASub1, 2)

		err := b.Initialize(context.Background())
		if !errors.Is(err, ErrAlreadyInitialized) {
			t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
		}
		if got := b.GetRedpoint(catalog.ModelASub1, false); got != 2 {
			t.Errorf("expected existing tree to be kept, got %d", got)
		}
	})

	t.Run("source error", func(t *testing.T) {
		b := NewBadges(errSource{err: errors.New("disk gone")})
		err := b.Initialize(context.Background())
		if err == nil || !strings.Contains(err.Error(), "disk gone") {
			t.Fatalf("expected source error, got %v", err)
		}
		if b.Initialized() {
			t.Error("failed initialization must leave badges uninitialized")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		b := NewBadges(catalog.NewStatic())
		if err := b.Initialize(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("invalid catalog path", func(t *testing.T) {
		b := NewBadges(catalog.NewStatic("Elsewhere/Root"))
		if err := b.Initialize(context.Background()); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("expected ErrInvalidPath, got %v", err)
		}
	})
}

func TestBadges_Uninitialized(t *testing.T) {
	var buf bytes.Buffer
	b := NewBadges(catalog.NewStatic(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	if err := b.SetRedpoint(catalog.ModelA, 1); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized from SetRedpoint, got %v", err)
	}
	if err := b.AddCallback(catalog.ModelA, "", func(int) {}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized from AddCallback, got %v", err)
	}
	if err := b.RefreshAll(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized from RefreshAll, got %v", err)
	}
	if got := b.GetRedpoint(catalog.ModelA, true); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if b.HasNode(catalog.ModelA) {
		t.Error("expected no nodes before initialize")
	}
	if len(b.Snapshot()) != 0 {
		t.Error("expected empty snapshot before initialize")
	}
	if !strings.Contains(buf.String(), "not initialized") {
		t.Errorf("expected uninitialized access to be logged, got %q", buf.String())
	}
}

func TestBadges_Example(t *testing.T) {
	b := newInitializedBadges(t)

	b.SetRedpoint(catalog.ModelASub1, 2)
	b.SetRedpoint(catalog.ModelASub2, 3)

	var modelA, sub1, sub2 []int
	b.AddCallback(catalog.ModelA, "", func(total int) { modelA = append(modelA, total) })
	b.AddCallback(catalog.ModelASub1, "", func(total int) { sub1 = append(sub1, total) })
	b.AddCallback(catalog.ModelASub2, "", func(total int) { sub2 = append(sub2, total) })

	// decrement buttons
	current := b.GetRedpoint(catalog.ModelASub1, false)
	b.SetRedpoint(catalog.ModelASub1, current-1)
	current = b.GetRedpoint(catalog.ModelASub2, false)
	b.SetRedpoint(catalog.ModelASub2, current-1)

	if got := b.GetRedpoint(catalog.AllRoot, true); got != 3 {
		t.Errorf("expected root total 3, got %d", got)
	}
	if len(modelA) != 3 || modelA[0] != 5 || modelA[2] != 3 {
		t.Errorf("unexpected ModelA notifications %v", modelA)
	}
	if len(sub1) != 2 || sub1[1] != 1 {
		t.Errorf("unexpected Sub1 notifications %v", sub1)
	}
	if len(sub2) != 2 || sub2[1] != 2 {
		t.Errorf("unexpected Sub2 notifications %v", sub2)
	}

	if err := b.RemoveCallback(catalog.ModelASub2, ""); err != nil {
		t.Fatalf("RemoveCallback failed: %v", err)
	}
	b.SetRedpoint(catalog.ModelASub2, 0)
	if len(sub2) != 2 {
		t.Errorf("expected removed callback not to fire, got %v", sub2)
	}
}

func TestBadges_SetUnknownPath(t *testing.T) {
	var buf bytes.Buffer
	b := NewBadges(catalog.NewStatic(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	if err := b.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	err := b.SetRedpoint(catalog.ModelA+"/Nope", 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("expected error to be logged, got %q", buf.String())
	}
}

func TestBadges_Reinitialize(t *testing.T) {
	b := newInitializedBadges(t)
	b.SetRedpoint(catalog.ModelASub1, 4)

	fired := 0
	b.AddCallback(catalog.ModelA, "", func(int) { fired++ })
	fired = 0

	if err := b.Reinitialize(context.Background()); err != nil {
		t.Fatalf("Reinitialize failed: %v", err)
	}
	if got := b.GetRedpoint(catalog.ModelASub1, false); got != 0 {
		t.Errorf("expected fresh tree, got count %d", got)
	}
	b.SetRedpoint(catalog.ModelASub1, 1)
	if fired != 0 {
		t.Errorf("expected old callbacks to be dropped, fired %d", fired)
	}
}

func TestBadges_ClearAll(t *testing.T) {
	b := newInitializedBadges(t)

	fired := 0
	b.AddCallback(catalog.ModelA, "label", func(int) { fired++ })
	b.AddCallback(catalog.ModelASub1, "icon", func(int) { fired++ })
	fired = 0

	b.ClearAll()
	b.SetRedpoint(catalog.ModelASub1, 1)
	b.RefreshAll()

	if fired != 0 {
		t.Errorf("expected no callbacks after ClearAll, fired %d", fired)
	}
	if got := b.GetRedpoint(catalog.ModelA, true); got != 1 {
		t.Errorf("expected counts to survive ClearAll, got %d", got)
	}
}

func TestBadges_InsertNode(t *testing.T) {
	b := newInitializedBadges(t)
	path := catalog.Root + "/ModelB/ModelB_Sub_1"

	if err := b.InsertNode(path); err != nil {
		t.Fatalf("InsertNode failed: %v", err)
	}
	if err := b.SetRedpoint(path, 2); err != nil {
		t.Fatalf("SetRedpoint failed: %v", err)
	}
	if got := b.GetRedpoint(catalog.Root, true); got != 2 {
		t.Errorf("expected Root total 2, got %d", got)
	}
	if !strings.Contains(b.Dump(), "ModelB_Sub_1 [2]") {
		t.Errorf("expected new node in dump:\n%s", b.Dump())
	}
}
