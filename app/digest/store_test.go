package digest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data", "posts.json"))

	collection, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if collection.Posts == nil || len(collection.Posts) != 0 {
		t.Errorf("Expected empty posts, got %v", collection.Posts)
	}
}

func TestStore_LoadWithoutPosts(t *testing.T) {
	for _, content := range []string{`{}`, `{"posts": null}`} {
		path := filepath.Join(t.TempDir(), "posts.json")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		collection, err := NewStore(path).Load()
		if err != nil {
			t.Fatalf("Expected no error for %s, got: %v", content, err)
		}
		if len(collection.Posts) != 0 {
			t.Errorf("Expected empty posts for %s, got %d", content, len(collection.Posts))
		}
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Expected error for corrupt store file")
	}
}

func TestStore_PrependAcrossRuns(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data", "posts.json"))

	first := Digest{Date: "2025-03-10", Subject: "first", Items: []Item{}}
	second := Digest{Date: "2025-03-10", Subject: "second", Items: []Item{}}

	for _, d := range []Digest{first, second} {
		collection, err := store.Load()
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		collection.Prepend(d)
		if err := store.Save(collection); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	collection, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(collection.Posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(collection.Posts))
	}
	if collection.Posts[0].Subject != "second" || collection.Posts[1].Subject != "first" {
		t.Errorf("Expected newest run first, got %s then %s", collection.Posts[0].Subject, collection.Posts[1].Subject)
	}

	latest, ok := collection.Latest()
	if !ok || latest.Subject != "second" {
		t.Errorf("Expected latest to be 'second', got '%s'", latest.Subject)
	}
}

func TestStore_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	store := NewStore(path)

	collection := &Collection{}
	collection.Prepend(Digest{
		Date:    "2025-03-10",
		Subject: "Headlines & Signals",
		Items:   []Item{{Headline: "h", Summary: "s", URL: "https://example.com/?a=1&b=2"}},
	})

	if err := store.Save(collection); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "{\n  \"posts\": [\n    {\n      \"date\": \"2025-03-10\",") {
		t.Errorf("Expected two-space indented output with stable key order, got:\n%s", content)
	}
	if !strings.Contains(content, "Headlines & Signals") {
		t.Error("Expected '&' to be written unescaped")
	}
	if strings.Index(content, "\"subject\"") > strings.Index(content, "\"items\"") {
		t.Error("Expected subject before items")
	}
}

func TestStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(filepath.Join(blocker, "posts.json"))
	if err := store.Save(&Collection{}); err == nil {
		t.Error("Expected error when the parent path is a file")
	}
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "posts.json"))

	for i := 0; i < 2; i++ {
		collection, err := store.Load()
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		collection.Prepend(Digest{Date: "2025-03-10", Subject: "run", Items: []Item{}})
		if err := store.Save(collection); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name() != "posts.json" {
		t.Errorf("Expected only posts.json in %s, got %v", dir, files)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
	}
}

func TestStore_FailedReplaceCleansUp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "posts.json")

	// A non-empty directory at the target path makes the final rename fail.
	if err := os.MkdirAll(filepath.Join(target, "occupied"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := NewStore(target).Save(&Collection{}); err == nil {
		t.Fatal("Expected error when the target cannot be replaced")
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name() != "posts.json" {
		t.Errorf("Expected temp file to be removed, got %v", files)
	}
}

func TestStore_PreservesUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	existing := `{
  "meta": {"owner": "editorial"},
  "posts": [
    {
      "date": "2025-03-03",
      "subject": "Earlier",
      "intro": "",
      "author": "Jane",
      "items": [{"headline": "h", "summary": "s", "url": "https://example.com/?a=1&b=2", "tag": "pinned"}],
      "metrics": [],
      "takeaway": ""
    }
  ],
  "version": 2
}`
	if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	collection, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	collection.Prepend(Digest{Date: "2025-03-10", Subject: "Latest", Items: []Item{}, Metrics: []string{}})
	if err := store.Save(collection); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, fragment := range []string{`"meta": {`, `"owner": "editorial"`, `"version": 2`, `"author": "Jane"`, `"tag": "pinned"`, `?a=1&b=2`} {
		if !strings.Contains(content, fragment) {
			t.Errorf("Expected %s to survive the rewrite, got:\n%s", fragment, content)
		}
	}
	if !strings.HasPrefix(content, "{\n  \"posts\": [") {
		t.Errorf("Expected posts to stay the first key, got:\n%s", content)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(reloaded.Posts) != 2 || reloaded.Posts[0].Subject != "Latest" || reloaded.Posts[1].Subject != "Earlier" {
		t.Errorf("Expected Latest then Earlier, got %v", reloaded.Posts)
	}
}

func TestDigest_EditedFieldsWin(t *testing.T) {
	var d Digest
	if err := json.Unmarshal([]byte(`{"date":"2025-03-03","subject":"Old","author":"Jane"}`), &d); err != nil {
		t.Fatal(err)
	}

	d.Subject = "New"

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"subject":"New"`) {
		t.Errorf("Expected edited subject in output, got: %s", data)
	}
}
