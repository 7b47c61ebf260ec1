package emoji

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadUnicode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"short_names": ["smile", "smiley2"], "name": "SMILING FACE", "unified": "1F604"},
			{"short_names": ["wave"], "name": "WAVING HAND", "unified": "1F44B"}
		]`))
	}))
	defer srv.Close()

	var tbl Table
	l := &Loader{Table: &tbl, UnicodeURL: srv.URL, Log: zerolog.Nop()}

	require.NoError(t, l.LoadUnicode(context.Background()))

	assert.Equal(t, 3, tbl.Len())

	e, ok := tbl.Lookup("smiley2")
	assert.True(t, ok)
	assert.Equal(t, "SMILING FACE", e.Description)
	assert.Equal(t, "1F604", e.Unicode)
}

func TestLoader_LoadCustom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "xoxs-test", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"ok": true, "emoji": {"partyparrot": "https://example.com/parrot.gif"}}`))
	}))
	defer srv.Close()

	var tbl Table
	l := &Loader{Table: &tbl, CustomURL: srv.URL, Token: "xoxs-test", Log: zerolog.Nop()}

	require.NoError(t, l.LoadCustom(context.Background()))

	e, ok := tbl.Lookup("partyparrot")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/parrot.gif", e.ImageURL)
}

func TestLoader_FailureLeavesTableUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var tbl Table
	tbl.Merge(map[string]Entry{"smile": {Unicode: "1F604"}})

	l := &Loader{Table: &tbl, UnicodeURL: srv.URL, Log: zerolog.Nop()}

	assert.Error(t, l.LoadUnicode(context.Background()))
	assert.Equal(t, 1, tbl.Len())
}

func TestLoader_Load_SkipsCustomWithoutToken(t *testing.T) {
	customCalled := false
	custom := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customCalled = true
	}))
	defer custom.Close()

	unicode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer unicode.Close()

	var tbl Table
	l := &Loader{Table: &tbl, UnicodeURL: unicode.URL, CustomURL: custom.URL, Log: zerolog.Nop()}
	l.Load(context.Background())

	assert.False(t, customCalled)
}
