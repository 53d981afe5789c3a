package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/carousel"
	"carousel/internal/eventbus"
)

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		toml    string
		want    carousel.State
		wantErr string
	}{
		{
			name: "valid config",
			toml: "version = 1\n[carousel]\nitems_total = 12\nitems_per_view = 4\ncurrent_index = 8\n",
			want: carousel.State{ItemsTotal: 12, ItemsPerView: 4, CurrentIndex: 8},
		},
		{
			name: "missing carousel table keeps defaults",
			toml: "version = 1\n",
			want: carousel.State{ItemsTotal: 9, ItemsPerView: 3},
		},
		{
			name:    "zero items",
			toml:    "version = 1\n[carousel]\nitems_total = 0\nitems_per_view = 1\n",
			wantErr: "items_total must be between 1 and 20",
		},
		{
			name:    "too many items",
			toml:    "version = 1\n[carousel]\nitems_total = 21\nitems_per_view = 1\n",
			wantErr: "items_total must be between 1 and 20",
		},
		{
			name:    "too many per view",
			toml:    "version = 1\n[carousel]\nitems_total = 20\nitems_per_view = 11\n",
			wantErr: "items_per_view must be between 1 and 10",
		},
		{
			name:    "window wider than set",
			toml:    "version = 1\n[carousel]\nitems_total = 2\nitems_per_view = 3\n",
			wantErr: "items_per_view (3) exceeds items_total (2)",
		},
		{
			name:    "index out of range",
			toml:    "version = 1\n[carousel]\nitems_total = 9\nitems_per_view = 3\ncurrent_index = 9\n",
			wantErr: "current_index must be between 0 and 8",
		},
		{
			name:    "unknown version",
			toml:    "version = 2\n",
			wantErr: "unsupported version 2",
		},
		{
			name:    "unknown key",
			toml:    "version = 1\ncolour = \"red\"\n",
			wantErr: "failed to parse config",
		},
		{
			name:    "invalid toml syntax",
			toml:    "version = [1",
			wantErr: "failed to parse config",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestConfig(t, test.toml)
			cfg, err := NewConfigServiceAt(path).LoadFromPath(path)

			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, cfg.Carousel.State())
		})
	}
}

func TestValidationErrorsWrapSentinel(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("version = 1\n[carousel]\nitems_total = 0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFromPathMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.toml")
	_, err := NewConfigServiceAt(path).LoadFromPath(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist, "Load must not create the file")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", FileName)
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.Carousel.SetState(carousel.State{ItemsTotal: 10, ItemsPerView: 3, CurrentIndex: 7})
	cfg.UISettings.ShowOffset = false
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "items_total = 10")
	assert.Contains(t, string(data), "current_index = 7")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()
	cfg.Carousel.CurrentIndex = 42

	err := NewConfigServiceAt(path).SaveToPath(cfg, path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBusEvents(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	defer bus.Close()

	events := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { events <- e })
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { events <- e })

	path := filepath.Join(t.TempDir(), FileName)
	svc := NewConfigServiceWithBus(bus, path)
	assert.Equal(t, path, svc.Path())

	cfg, err := svc.Load()
	require.NoError(t, err)
	require.NoError(t, svc.Save(cfg))

	seen := map[eventbus.EventType]eventbus.DomainEvent{}
	for len(seen) < 2 {
		select {
		case e := <-events:
			seen[e.Type()] = e
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out, got %v", seen)
		}
	}

	loaded := seen[eventbus.EventConfigLoaded].(eventbus.ConfigLoadedEvent)
	assert.Equal(t, path, loaded.Path)
	assert.Equal(t, carousel.State{ItemsTotal: 9, ItemsPerView: 3}, loaded.State)
	assert.Equal(t, path, seen[eventbus.EventConfigSaved].(eventbus.ConfigSavedEvent).Path)
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FileName, filepath.Base(DefaultPath()))
	assert.Equal(t, "carousel", filepath.Base(filepath.Dir(DefaultPath())))
}

func TestEmptyStateFile(t *testing.T) {
	t.Parallel()

	path := writeTestConfig(t, " \n\t\n")
	svc := NewConfigServiceAt(path)

	_, err := svc.LoadFromPath(path)
	require.ErrorIs(t, err, ErrEmptyConfig)

	// Load treats a blank file like a missing one
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := NewConfigServiceAt(filepath.Join(dir, FileName))
	require.NoError(t, svc.Save(DefaultConfig()))
	require.NoError(t, svc.Save(DefaultConfig()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}
