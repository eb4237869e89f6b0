package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chorusfm/chorus/internal/formatter"
	"github.com/chorusfm/chorus/internal/shared"
	"github.com/urfave/cli/v3"
)

// SongsList prints the song catalog.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	songs := r.store.ListSongs()
	r.logger.Infof("listing %v songs", len(songs))

	if useJSON {
		return r.writeJSON(songs, pretty)
	}

	for _, song := range songs {
		r.writePlain("%s  %s • %s (%s) [%s]\n", song.ID, song.Title, song.Artist, song.Album, song.Duration)
	}
	return r.writePlainln("%d songs", len(songs))
}

// SongsExport writes the catalog in the requested format to stdout or a file.
func (r *Runner) SongsExport(ctx context.Context, cmd *cli.Command) error {
	format := strings.ToLower(cmd.String("format"))
	outputPath := cmd.String("output")

	songs := r.store.ListSongs()

	var data []byte
	var err error
	switch format {
	case "csv":
		data, err = formatter.ExportToCSV(songs)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown("Song Catalog", songs)
	case "text", "txt":
		data, err = formatter.ExportToText(songs)
	default:
		return fmt.Errorf("%w: format %q (want csv, markdown, or text)", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return fmt.Errorf("failed to export songs: %w", err)
	}

	if outputPath == "" {
		_, err = r.output.Write(data)
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	r.logger.Infof("exported %v songs to %v", len(songs), outputPath)
	return r.writePlain("✓ Exported %d songs to %s\n", len(songs), outputPath)
}

// PlaylistsList prints the playlist catalog.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	playlists := r.store.ListPlaylists()
	r.logger.Infof("listing %v playlists", len(playlists))

	if useJSON {
		return r.writeJSON(playlists, pretty)
	}

	for _, playlist := range playlists {
		r.writePlain("%s  %s (%d songs, %s)\n",
			playlist.ID, playlist.Name, len(playlist.SongIDs), formatter.VisibilityString(playlist.IsPublic))
	}
	return r.writePlainln("%d playlists", len(playlists))
}

// PlaylistsShow renders one playlist with its resolved songs as Markdown.
func (r *Runner) PlaylistsShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}

	playlist, err := r.store.GetPlaylist(id)
	if err != nil {
		return err
	}

	songs := r.store.ResolveSongs(playlist.SongIDs)
	data, err := formatter.ExportPlaylistToMarkdown(playlist, songs)
	if err != nil {
		return fmt.Errorf("failed to render playlist: %w", err)
	}

	_, err = r.output.Write(data)
	return err
}

// UsersList prints the account catalog.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	users := r.store.ListUsers()
	r.logger.Infof("listing %v users", len(users))

	if useJSON {
		return r.writeJSON(users, pretty)
	}

	for _, user := range users {
		r.writePlain("%s  %s <%s> (%s)\n", user.ID, user.Username, user.Email, user.Role)
	}
	return r.writePlainln("%d users", len(users))
}

// Setup writes a starter configuration file for editing.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	return r.writePlain("✓ Config written to %s\n", configPath)
}
