package store

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下创建 gdata manager
func createTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestStateStoreSaveLoadPersists(t *testing.T) {
	manager := createTestGdataManager(t, "test_state_store")

	s := NewStateStore(manager)
	if !s.Persistent() {
		t.Fatal("Persistent() = false with a gdata manager")
	}
	if err := s.Save("count", ButtonState{ImageMode: true}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例从 gdata 读取，不依赖内存缓存
	reloaded := NewStateStore(manager)
	state, ok, err := reloaded.Load("count")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !ok {
		t.Fatal("Load() did not find saved state")
	}
	if !state.ImageMode {
		t.Error("ImageMode = false, want true")
	}
}

func TestStateStoreOverwrite(t *testing.T) {
	manager := createTestGdataManager(t, "test_state_store_overwrite")

	s := NewStateStore(manager)
	if err := s.Save("count", ButtonState{ImageMode: true}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := s.Save("count", ButtonState{ImageMode: false}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	state, ok, err := NewStateStore(manager).Load("count")
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if state.ImageMode {
		t.Error("ImageMode = true, want the later saved false")
	}
}

func TestStateStoreLoadMissing(t *testing.T) {
	s := NewStateStore(createTestGdataManager(t, "test_state_store_missing"))

	_, ok, err := s.Load("nothing")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if ok {
		t.Error("Load() found state that was never saved")
	}
}

func TestStateStoreNilManager(t *testing.T) {
	s := NewStateStore(nil)
	if s.Persistent() {
		t.Error("Persistent() = true without a gdata manager")
	}

	if err := s.Save("count", ButtonState{ImageMode: true}); err != nil {
		t.Fatalf("Save() in degraded mode error: %v", err)
	}

	state, ok, err := s.Load("count")
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v; want in-memory hit", ok, err)
	}
	if !state.ImageMode {
		t.Error("ImageMode = false, want true")
	}
}

func TestStateStoreSaveEmptyName(t *testing.T) {
	s := NewStateStore(nil)
	if err := s.Save("", ButtonState{}); err == nil {
		t.Error("Save() expected error for empty name")
	}
}
