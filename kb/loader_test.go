package kb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/casematch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kb.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T, cfg *Config, opts ...Option) *Loader {
	t.Helper()
	loader, err := NewLoader(cfg, opts...)
	require.NoError(t, err)
	return loader
}

func TestNewLoader(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		loader, err := NewLoader(NewConfig())
		require.NoError(t, err)
		assert.NotNil(t, loader)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewLoader(nil)
		assert.Equal(t, ErrConfigRequired, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewLoader(NewConfig(WithLocalPath("")))
		assert.Error(t, err)
	})
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("conventional columns", func(t *testing.T) {
		path := writeCSV(t, "condition,symptoms,advice,url\n"+
			"Strep throat,sore throat and fever,rest and fluids,https://example.com/strep\n"+
			"Migraine,throbbing headache,rest in a dark room,\n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		records := loader.Load(ctx)
		require.Len(t, records, 2)

		assert.Equal(t, "Strep throat", records[0].Condition)
		assert.Equal(t, "sore throat and fever", records[0].Symptoms)
		assert.Equal(t, "rest and fluids", records[0].Advice)
		assert.Equal(t, "https://example.com/strep", records[0].URL)
		assert.Empty(t, records[1].URL)
	})

	t.Run("alias columns", func(t *testing.T) {
		path := writeCSV(t, "disease,features,self_care,link\n"+
			"Flu,fever and aches,rest,https://example.com/flu\n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		records := loader.Load(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, "Flu", records[0].Condition)
		assert.Equal(t, "fever and aches", records[0].Symptoms)
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		path := writeCSV(t, "condition,symptoms,advice\n"+
			"  Flu  ,  fever  ,  rest  \n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		records := loader.Load(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, "Flu", records[0].Condition)
		assert.Equal(t, "fever", records[0].Symptoms)
		assert.Equal(t, "rest", records[0].Advice)
	})

	t.Run("blank rows dropped", func(t *testing.T) {
		path := writeCSV(t, "condition,symptoms,advice,url\n"+
			",,,https://example.com/orphan\n"+
			"   ,   ,   ,\n"+
			"Flu,fever,rest,\n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		records := loader.Load(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, "Flu", records[0].Condition)
	})

	t.Run("ragged rows tolerated", func(t *testing.T) {
		path := writeCSV(t, "condition,symptoms,advice,url\n"+
			"Flu,fever\n"+
			"Cold,sneezing,rest,https://example.com/cold,extra\n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		records := loader.Load(ctx)
		require.Len(t, records, 2)
		assert.Empty(t, records[0].Advice)
		assert.Equal(t, "https://example.com/cold", records[1].URL)
	})

	t.Run("unrecognized header yields blank fields only", func(t *testing.T) {
		path := writeCSV(t, "foo,bar\nsomething,else\n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		// Every field defaults to empty, so every row is blank and dropped.
		assert.Empty(t, loader.Load(ctx))
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.csv")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		assert.Empty(t, loader.Load(ctx))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeCSV(t, "")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		assert.Empty(t, loader.Load(ctx))
	})

	t.Run("header only", func(t *testing.T) {
		path := writeCSV(t, "condition,symptoms,advice\n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		assert.Empty(t, loader.Load(ctx))
	})

	t.Run("records get deterministic content IDs", func(t *testing.T) {
		path := writeCSV(t, "condition,symptoms,advice\nFlu,fever,rest\n")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		records := loader.Load(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, core.IDFromContent(records[0].Text()), records[0].Id)
	})
}

func TestLoader_Load_FetchOnMiss(t *testing.T) {
	ctx := context.Background()
	csvBody := "condition,symptoms,advice\nFlu,fever,rest\n"

	t.Run("downloads when local path absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(csvBody))
		}))
		defer server.Close()

		path := filepath.Join(t.TempDir(), "kb.csv")
		loader := newTestLoader(t, NewConfig(
			WithLocalPath(path),
			WithRemoteURL(server.URL),
		))

		records := loader.Load(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, "Flu", records[0].Condition)

		// The download materialized the local copy.
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("existing local copy short-circuits the fetch", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Write([]byte(csvBody))
		}))
		defer server.Close()

		path := writeCSV(t, "condition,symptoms,advice\nCold,sneezing,rest\n")
		loader := newTestLoader(t, NewConfig(
			WithLocalPath(path),
			WithRemoteURL(server.URL),
		))

		records := loader.Load(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, "Cold", records[0].Condition)
		assert.Zero(t, hits, "local file present, remote must not be contacted")
	})

	t.Run("server error degrades to empty corpus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		}))
		defer server.Close()

		path := filepath.Join(t.TempDir(), "kb.csv")
		loader := newTestLoader(t, NewConfig(
			WithLocalPath(path),
			WithRemoteURL(server.URL),
		))

		assert.Empty(t, loader.Load(ctx))

		// A failed download must not leave a partial file behind.
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("unreachable server degrades to empty corpus", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.csv")
		loader := newTestLoader(t, NewConfig(
			WithLocalPath(path),
			WithRemoteURL("http://127.0.0.1:1/kb.csv"),
		))

		assert.Empty(t, loader.Load(ctx))
	})

	t.Run("no remote configured", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.csv")
		loader := newTestLoader(t, NewConfig(WithLocalPath(path)))

		assert.Empty(t, loader.Load(ctx))
	})
}
