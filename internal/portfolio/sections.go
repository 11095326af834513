// Package portfolio renders the public-facing dashboard. It deliberately
// consumes nothing from the vault beyond the summary snapshot: no records,
// no secrets, no blobs.
package portfolio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pumpkin2800/zarqon/internal/vault/access"
	"github.com/pumpkin2800/zarqon/internal/vault/services"
)

// Section is one dashboard block. MinLevel gates who sees it.
type Section struct {
	Title    string
	MinLevel access.Level
	Body     func(services.Snapshot) string
}

// Sections returns every dashboard block in display order. Verified and
// internal blocks simply do not appear for lower levels; there is no
// redacted placeholder in the terminal rendition.
func Sections() []Section {
	return []Section{
		{
			Title:    "Identity / Role",
			MinLevel: access.Baseline,
			Body: func(s services.Snapshot) string {
				return fmt.Sprintf("**%s** — a normal man trying to be the best version of himself "+
					"and inspire others.\n\nPrinciples:\n\n- to be a better man\n"+
					"- to be financially stable\n- to be someone worthy", s.UserName)
			},
		},
		{
			Title:    "Philosophy",
			MinLevel: access.Verified,
			Body: func(services.Snapshot) string {
				return "Restart from zero to avoid shallow seniority. Every 6 months, " +
					"verify core knowledge by rebuilding tools from scratch."
			},
		},
		{
			Title:    "Timeline / Roadmap",
			MinLevel: access.Baseline,
			Body: func(s services.Snapshot) string {
				return fmt.Sprintf("**Phase 1: Foundation** (active)\n\n"+
					"Core infrastructure and identity establishment. "+
					"%d courses in progress, %d completed.\n\n**Phase 2** (locked)",
					s.CoursesActive, s.CoursesCompleted)
			},
		},
		{
			Title:    "Proof of Discipline",
			MinLevel: access.Baseline,
			Body: func(s services.Snapshot) string {
				return fmt.Sprintf("*\"Motivation is a signal. Discipline is bandwidth. "+
					"I do not rely on how I feel. I rely on the protocol.\"*\n\n%d books read.",
					s.BooksRead)
			},
		},
		{
			Title:    "Vault",
			MinLevel: access.Baseline,
			Body: func(s services.Snapshot) string {
				return fmt.Sprintf("Net worth %s. %d followers across platforms.",
					s.NetWorth, s.Followers)
			},
		},
		{
			Title:    "Ledger",
			MinLevel: access.Verified,
			Body: func(s services.Snapshot) string {
				return fmt.Sprintf("| | |\n|---|---|\n| Income | %s |\n| Expenses | %s |\n| Net | %s |",
					s.Income.String(), s.Expenses.String(), s.Net.String())
			},
		},
		{
			Title:    "Contact",
			MinLevel: access.Verified,
			Body: func(services.Snapshot) string {
				return "Direct channels are open to verified visitors."
			},
		},
		{
			Title:    "Diagnostics",
			MinLevel: access.Internal,
			Body: func(s services.Snapshot) string {
				return "Raw snapshot:\n\n```\n" + fmt.Sprintf("%+v", s) + "\n```"
			},
		},
	}
}

// Visible filters sections down to what the given level may see.
func Visible(sections []Section, level access.Level) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if level >= s.MinLevel {
			out = append(out, s)
		}
	}
	return out
}

// Markdown assembles the visible sections into one markdown document.
func Markdown(snap services.Snapshot, level access.Level) string {
	var b strings.Builder
	for _, s := range Visible(Sections(), level) {
		fmt.Fprintf(&b, "# %s\n\n%s\n\n", s.Title, s.Body(snap))
	}
	return b.String()
}

// Render turns the markdown document into styled terminal output.
func Render(snap services.Snapshot, level access.Level) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("init renderer: %w", err)
	}
	out, err := r.Render(Markdown(snap, level))
	if err != nil {
		return "", fmt.Errorf("render dashboard: %w", err)
	}
	return out, nil
}
