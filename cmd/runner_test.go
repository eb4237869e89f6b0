package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chorusfm/chorus/internal/player"
	"github.com/chorusfm/chorus/internal/session"
	"github.com/chorusfm/chorus/internal/shared"
	"github.com/chorusfm/chorus/internal/store"
	"github.com/urfave/cli/v3"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	catalog := store.NewSeeded(0)
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config:  shared.DefaultConfig(),
		Store:   catalog,
		Session: session.New(catalog, filepath.Join(t.TempDir(), "session.json")),
		Player:  player.New(0.7),
		Logger:  shared.NewLogger(nil),
		Output:  output,
	})
	return runner, output
}

func runCommand(t *testing.T, r *Runner, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "chorus",
		Commands: r.register(),
	}
	return app.Run(context.Background(), append([]string{"chorus"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			catalog := store.NewSeeded(0)
			sess := session.New(catalog, "session.json")
			p := player.New(0.5)

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Store:   catalog,
				Session: sess,
				Player:  p,
				Logger:  logger,
				Output:  output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.store != catalog {
				t.Error("expected store to be set")
			}
			if runner.session != sess {
				t.Error("expected session to be set")
			}
			if runner.player != p {
				t.Error("expected player to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil store seeds the catalog", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.store == nil {
				t.Fatal("expected a seeded store")
			}
			if len(runner.store.ListSongs()) == 0 {
				t.Error("expected the default store to carry the seed catalog")
			}
		})

		t.Run("with nil session builds one over the store", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.session == nil {
				t.Error("expected a default session")
			}
		})
	})
}

func TestAuthCommands(t *testing.T) {
	t.Run("login persists and whoami reports", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "login", "john_doe", "anything"); err != nil {
			t.Fatalf("login: %v", err)
		}
		if !strings.Contains(output.String(), "john_doe") {
			t.Errorf("login output %q should name the account", output.String())
		}

		output.Reset()
		if err := runCommand(t, runner, "whoami"); err != nil {
			t.Fatalf("whoami: %v", err)
		}
		if !strings.Contains(output.String(), "john@example.com") {
			t.Errorf("whoami output %q should show the email", output.String())
		}
	})

	t.Run("admin requires its secret", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := runCommand(t, runner, "login", "2004", "wrong"); err == nil {
			t.Error("expected admin login with wrong secret to fail")
		}
		if err := runCommand(t, runner, "login", "2004", "14"); err != nil {
			t.Errorf("admin login: %v", err)
		}
	})

	t.Run("missing arguments are rejected", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := runCommand(t, runner, "login", "john_doe"); err == nil {
			t.Error("expected an error without a secret")
		}
	})

	t.Run("logout clears the session", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "login", "jane_smith", "pw"); err != nil {
			t.Fatalf("login: %v", err)
		}
		if err := runCommand(t, runner, "logout"); err != nil {
			t.Fatalf("logout: %v", err)
		}

		output.Reset()
		if err := runCommand(t, runner, "whoami"); err != nil {
			t.Fatalf("whoami: %v", err)
		}
		if !strings.Contains(output.String(), "Not signed in") {
			t.Errorf("whoami output %q should report signed-out state", output.String())
		}
	})
}

func TestCatalogCommands(t *testing.T) {
	t.Run("songs list", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "songs", "list"); err != nil {
			t.Fatalf("songs list: %v", err)
		}
		for _, want := range []string{"Blinding Lights", "Stay", "5 songs"} {
			if !strings.Contains(output.String(), want) {
				t.Errorf("songs list output missing %q", want)
			}
		}
	})

	t.Run("songs list json", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "songs", "list", "--json"); err != nil {
			t.Fatalf("songs list: %v", err)
		}
		if !strings.Contains(output.String(), `"audioUrl"`) {
			t.Error("expected catalog field names in JSON output")
		}
	})

	t.Run("users list", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "users", "list"); err != nil {
			t.Fatalf("users list: %v", err)
		}
		if !strings.Contains(output.String(), "admin@chorus.fm") {
			t.Error("expected the admin account in the listing")
		}
	})

	t.Run("playlists list", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "playlists", "list"); err != nil {
			t.Fatalf("playlists list: %v", err)
		}
		for _, want := range []string{"My Favorites", "Workout Mix", "private"} {
			if !strings.Contains(output.String(), want) {
				t.Errorf("playlists list output missing %q", want)
			}
		}
	})

	t.Run("playlists show resolves songs", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "playlists", "show", "1"); err != nil {
			t.Fatalf("playlists show: %v", err)
		}
		for _, want := range []string{"My Favorites", "Blinding Lights", "Good 4 U"} {
			if !strings.Contains(output.String(), want) {
				t.Errorf("playlists show output missing %q", want)
			}
		}
	})

	t.Run("playlists show unknown id", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := runCommand(t, runner, "playlists", "show", "999"); err == nil {
			t.Error("expected an error for an unknown playlist")
		}
	})
}

func TestSongsExport(t *testing.T) {
	t.Run("csv to stdout", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := runCommand(t, runner, "songs", "export", "--format", "csv"); err != nil {
			t.Fatalf("songs export: %v", err)
		}
		if !strings.HasPrefix(output.String(), "ID,Title,Artist") {
			t.Errorf("csv export should start with a header, got %q", output.String()[:20])
		}
	})

	t.Run("markdown to file", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		path := filepath.Join(t.TempDir(), "catalog.md")

		if err := runCommand(t, runner, "songs", "export", "--format", "markdown", "--output", path); err != nil {
			t.Fatalf("songs export: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !strings.Contains(string(data), "# Song Catalog") {
			t.Error("markdown export should carry the catalog title")
		}
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := runCommand(t, runner, "songs", "export", "--format", "yaml"); err == nil {
			t.Error("expected an error for an unsupported format")
		}
	})
}

func TestSetup(t *testing.T) {
	runner, output := newTestRunner(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := runCommand(t, runner, "setup", "--config", path); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !strings.Contains(output.String(), "Config written") {
		t.Errorf("setup output = %q", output.String())
	}

	if _, err := shared.LoadConfig(path); err != nil {
		t.Errorf("generated config should load: %v", err)
	}
}
