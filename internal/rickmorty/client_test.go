package rickmorty

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage кодирует PNG заданного размера для тестов изображений.
func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func characterBody(id int, name string) string {
	return fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"status": "Alive",
		"species": "Human",
		"image": "http://example.invalid/img.jpg",
		"origin": {"name": "Earth"},
		"location": {"name": "Citadel"},
		"episode": ["http://example.invalid/ep/1", "http://example.invalid/ep/2"]
	}`, id, name)
}

func TestCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/character", r.URL.Path)
		w.Write([]byte(`{"info": {"count": 826}}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	count, err := client.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 826, count)
}

func TestCharacter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/character/42", r.URL.Path)
		w.Write([]byte(characterBody(42, "Rick Sanchez")))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	ch, err := client.Character(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Rick Sanchez", ch.Name)
	assert.Equal(t, "Earth", ch.Origin.Name)
	assert.Equal(t, "Citadel", ch.Location.Name)
	assert.Len(t, ch.Episode, 2)
}

func TestRandomUsesLiveCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/character" {
			w.Write([]byte(`{"info": {"count": 10}}`))
			return
		}
		w.Write([]byte(characterBody(7, "Morty Smith")))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, CharacterCount: 999})

	var gotN int
	client.randInt = func(n int) int {
		gotN = n
		return 6
	}

	ch, err := client.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Morty Smith", ch.Name)
	// Живое количество, не запасное
	assert.Equal(t, 10, gotN)
}

func TestRandomFallsBackOnCountFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/character" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(characterBody(3, "Summer Smith")))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, CharacterCount: 50})

	var gotN int
	client.randInt = func(n int) int {
		gotN = n
		return 2
	}

	ch, err := client.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Summer Smith", ch.Name)
	// Настраиваемое запасное значение вместо скрытой константы
	assert.Equal(t, 50, gotN)
}

func TestEpisodeName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "name": "Pilot"}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	name, err := client.EpisodeName(context.Background(), srv.URL+"/episode/1")
	require.NoError(t, err)
	assert.Equal(t, "Pilot", name)
}

func TestFetchImageAndSave(t *testing.T) {
	img := testImage(t, 1, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(img)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	data, err := client.FetchImage(context.Background(), srv.URL+"/img.png")
	require.NoError(t, err)
	require.Equal(t, len(img), len(data))

	ch := &Character{ID: 1, Name: "Rick Sanchez"}
	dir := t.TempDir()
	path, err := SaveImage(ch, data, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Rick Sanchez.jpg"), path)

	// Круговой обход: длина файла равна длине скачанных байт
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(data), len(saved))
}

func TestFetchImageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	_, err := client.FetchImage(context.Background(), srv.URL+"/missing.png")
	assert.Error(t, err)
}

func TestResolution(t *testing.T) {
	res, err := Resolution(testImage(t, 300, 200))
	require.NoError(t, err)
	assert.Equal(t, "300x200", res)

	_, err = Resolution([]byte("не изображение"))
	assert.Error(t, err)
}
