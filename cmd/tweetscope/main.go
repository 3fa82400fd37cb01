package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/rsaidi/tweetscope/internal/config"
	"github.com/rsaidi/tweetscope/internal/corpus"
	"github.com/rsaidi/tweetscope/internal/session"
	"github.com/rsaidi/tweetscope/internal/ui"
)

func main() {
	// Parse CLI flags; they win over config and environment
	corpusPath := flag.String("corpus", "", "Path to the tweet collection file")
	exportPath := flag.String("export", "", "Path for the annotation export file")
	resumePath := flag.String("resume", "", "Previous export to preload annotations from")
	flag.Parse()

	// A .env in the working directory can carry TWEETSCOPE_* overrides
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *corpusPath != "" {
		cfg.Corpus.Path = *corpusPath
	}
	if *exportPath != "" {
		cfg.Export.Path = *exportPath
	}

	// The collection is loaded exactly once; a missing or malformed
	// file is fatal at startup.
	tweets, err := corpus.Get(cfg.Corpus.Path)
	if err != nil {
		log.Fatalf("Failed to load tweet collection: %v", err)
	}

	sess := session.New()
	if *resumePath != "" {
		annotations, err := session.ImportAnnotations(*resumePath)
		if err != nil {
			log.Fatalf("Failed to resume from %s: %v", *resumePath, err)
		}
		sess.Annotations = annotations
	}

	model := ui.NewModel(tweets, sess, cfg.Export.Path, ui.ThemeByName(cfg.UI.Theme))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Error running TUI: %v", err)
		os.Exit(1)
	}
}
