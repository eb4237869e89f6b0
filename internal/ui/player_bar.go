package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chorusfm/chorus/internal/formatter"
)

var barTitle = lipgloss.NewStyle().Bold(true)

// renderPlayerBar draws the persistent transport strip shown under every
// authenticated view. It reads the player snapshot only; all mutation goes
// through the key handlers.
func (m *Model) renderPlayerBar() string {
	now := m.player.Now()

	if !now.Loaded {
		return styles.bar.Render(styles.dim.Render("Nothing playing • pick a song to start"))
	}

	glyph := "▶"
	if now.Playing {
		glyph = "⏸"
	}

	track := fmt.Sprintf("%s %s", styles.accent.Render(glyph), barTitle.Render(now.Song.Title))
	artist := styles.dim.Render(now.Song.Artist)

	elapsed := formatter.FormatTime(now.CurrentTime)
	total := formatter.FormatTime(now.Duration)
	clock := fmt.Sprintf("%s / %s", elapsed, total)

	gauge := volumeGauge(now.Volume)
	position := styles.dim.Render(fmt.Sprintf("%d of %d", now.Index+1, now.QueueLen))

	line := fmt.Sprintf("%s  %s  •  %s  •  %s  •  vol %s", track, artist, clock, position, gauge)
	return styles.bar.Render(line)
}

// volumeGauge renders a ten-step volume meter.
func volumeGauge(volume float64) string {
	filled := int(volume*10 + 0.5)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
