//go:build unit

package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"booking-api/internal/domain/request"
	"booking-api/internal/infra/store"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) (*store.FileStore, string) {
		t.Helper()
		path := filepath.Join(t.TempDir(), "requests.json")
		fs, err := store.NewFileStore(path, testLogger())
		require.NoError(t, err)
		return fs, path
	}

	t.Run("ファイル未作成なら空シーケンス", func(t *testing.T) {
		fs, _ := newStore(t)

		records, err := fs.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("保存した内容がそのまま読める", func(t *testing.T) {
		fs, _ := newStore(t)
		want := sampleRecords()

		require.NoError(t, fs.SaveAll(ctx, want))

		got, err := fs.LoadAll(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("保存は全置換", func(t *testing.T) {
		fs, _ := newStore(t)
		require.NoError(t, fs.SaveAll(ctx, sampleRecords()))

		replacement := sampleRecords()[:1]
		require.NoError(t, fs.SaveAll(ctx, replacement))

		got, err := fs.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b2", got[0].ID)
	})

	t.Run("壊れた内容は空シーケンスに自己修復", func(t *testing.T) {
		fs, path := newStore(t)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		records, err := fs.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("配列以外の JSON も空シーケンス扱い", func(t *testing.T) {
		fs, path := newStore(t)
		require.NoError(t, os.WriteFile(path, []byte(`{"requests": []}`), 0o644))

		records, err := fs.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("nil 保存でも有効な空配列を書く", func(t *testing.T) {
		fs, path := newStore(t)
		require.NoError(t, fs.SaveAll(ctx, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	})

	t.Run("一時ファイルを残さない", func(t *testing.T) {
		fs, path := newStore(t)
		require.NoError(t, fs.SaveAll(ctx, sampleRecords()))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Base(path), entries[0].Name())
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("呼び出し側の変更が store に波及しない", func(t *testing.T) {
		ms := store.NewMemoryStore()
		require.NoError(t, ms.SaveAll(ctx, sampleRecords()))

		loaded, err := ms.LoadAll(ctx)
		require.NoError(t, err)
		loaded[0].Status = request.StatusCancelled

		reloaded, err := ms.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, reloaded[0].Status)
	})

	t.Run("初期状態は空", func(t *testing.T) {
		ms := store.NewMemoryStore()
		records, err := ms.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
