package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rsaidi/tweetscope/internal/corpus"
	"github.com/rsaidi/tweetscope/internal/session"
)

func main() {
	// End-to-end smoke check: load a collection, annotate, filter, export
	dir, err := os.MkdirTemp("", "tweetscope-smoke")
	if err != nil {
		fmt.Printf("✗ temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	collection := filepath.Join(dir, "tweets.json")
	sample := `[
  {"content": "first tweet", "tweetDate": "2021/05/02", "tweetUrl": "https://twitter.com/a/status/1", "Twitter Profile": "https://twitter.com/a"},
  {"content": "second tweet", "tweetDate": "2021/05/01", "tweetUrl": "https://twitter.com/b/status/2", "Twitter Profile": "https://twitter.com/b"}
]`
	if err := os.WriteFile(collection, []byte(sample), 0644); err != nil {
		fmt.Printf("✗ write collection: %v\n", err)
		os.Exit(1)
	}

	tweets, err := corpus.Load(collection)
	if err != nil {
		fmt.Printf("✗ load: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Loaded %d tweets, first by date: %q\n", len(tweets), tweets[0].Content)

	sess := session.New()
	sess.Save(0, session.Annotation{
		Tag:     "grief",
		Note:    "smoke note",
		Content: tweets[0].Content,
		Date:    tweets[0].TweetDate,
		User:    corpus.Username(tweets[0].ProfileURL),
		URL:     tweets[0].TweetURL,
	})
	fmt.Printf("✓ Saved annotation, tags now: %v\n", sess.Tags())

	sess.Criteria.Tag = "grief"
	filtered := sess.Filtered(tweets)
	fmt.Printf("✓ Tag filter matched %d of %d\n", len(filtered), len(tweets))

	exportPath := filepath.Join(dir, "annotations_export.json")
	if err := sess.Export(exportPath); err != nil {
		fmt.Printf("✗ export: %v\n", err)
		os.Exit(1)
	}
	back, err := session.ImportAnnotations(exportPath)
	if err != nil {
		fmt.Printf("✗ reimport: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Export round-trip kept %d annotations\n", len(back))

	fmt.Println("\n✅ Smoke check complete - corpus, session and export are wired together!")
}
