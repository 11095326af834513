package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pumpkin2800/zarqon/internal/vault/models"
)

func (a *App) social(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		latest, err := a.services.Social.Latest(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		for _, st := range latest {
			fmt.Printf("%-12s %8d followers %8d views  (%s)\n",
				st.Platform, st.Followers, st.Views, st.Date.Format("2006-01-02"))
		}
	case "add":
		platform, err := GetSimpleText(a.reader, "Platform", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		followers, err := GetInt(a.reader, "Followers", 0, os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		views, err := GetInt(a.reader, "Views", 0, os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		date, err := GetDate(a.reader, "Date (YYYY-MM-DD, empty for today)", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		id, err := a.services.Social.Add(ctx, models.SocialStat{
			Platform: platform, Followers: followers, Views: views, Date: date,
		})
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Printf("Added stat %d\n", id)
	case "series":
		if len(args) < 2 {
			fmt.Println("Usage: social series <platform>")
			return
		}
		series, err := a.services.Social.Series(ctx, args[1])
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		for _, st := range series {
			fmt.Printf("%s %8d followers\n", st.Date.Format("2006-01-02"), st.Followers)
		}
	case "delete":
		a.deleteByID(args[1:], "social delete <id>", a.services.Social.Delete)
	default:
		fmt.Println("Usage: social [list|add|series <platform>|delete <id>]")
	}
}

func (a *App) sites(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		list, err := a.services.Websites.List(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		for _, w := range list {
			pin := " "
			if w.IsPinned {
				pin = "*"
			}
			fmt.Printf("%4d %s [%-6s] %-20s %s  %s\n",
				w.ID, pin, w.Priority, w.Name, w.URL, strings.Join(w.Tags, ","))
		}
	case "add":
		url, err := GetSimpleText(a.reader, "URL", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		name, err := GetSimpleText(a.reader, "Name", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		priority, err := GetSimpleText(a.reader, "Priority (low/medium/high)", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		tagLine, err := GetSimpleText(a.reader, "Tags (comma separated, optional)", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		var tags []string
		for _, tag := range strings.Split(tagLine, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		id, err := a.services.Websites.Add(ctx, models.Website{
			URL: url, Name: name, Priority: models.Priority(priority), Tags: tags,
		})
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Printf("Added site %d\n", id)
	case "pin":
		a.toggleByID(args[1:], "sites pin <id>", a.services.Websites.TogglePin)
	case "delete":
		a.deleteByID(args[1:], "sites delete <id>", a.services.Websites.Delete)
	default:
		fmt.Println("Usage: sites [list|add|pin <id>|delete <id>]")
	}
}

func (a *App) certs(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		list, err := a.services.Certificates.List(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		for _, c := range list {
			expiry := "never"
			if c.ExpiryDate != nil {
				expiry = c.ExpiryDate.Format("2006-01-02")
			}
			fmt.Printf("%4d  %-24s %-16s issued %s  expires %s\n",
				c.ID, c.Name, c.Issuer, c.IssueDate.Format("2006-01-02"), expiry)
		}
	case "add":
		name, err := GetSimpleText(a.reader, "Name", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		issuer, err := GetSimpleText(a.reader, "Issuer", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		issued, err := GetDate(a.reader, "Issue date (YYYY-MM-DD, empty for today)", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		id, err := a.services.Certificates.Add(ctx, models.Certificate{
			Name: name, Issuer: issuer, IssueDate: issued,
		})
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Printf("Added certificate %d\n", id)
	case "image":
		a.certImage(ctx, args[1:])
	case "show":
		a.certShow(ctx, args[1:])
	case "delete":
		a.deleteByID(args[1:], "certs delete <id>", a.services.Certificates.Delete)
	default:
		fmt.Println("Usage: certs [list|add|image <id> <file>|show <id>|delete <id>]")
	}
}

func (a *App) certImage(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: certs image <id> <file>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := a.services.Certificates.AttachImage(ctx, id, data); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Image attached")
}

// certShow materializes the scan so an external viewer can open it. The file
// lives until the next show or program exit.
func (a *App) certShow(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: certs show <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	cert, err := a.services.Certificates.Get(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if len(cert.Image) == 0 {
		fmt.Println("No image attached")
		return
	}
	h, err := a.renderer.Render(cert.Image)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println(h.Path)
}

func (a *App) courses(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		list, err := a.services.Courses.List(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		for _, c := range list {
			fmt.Printf("%4d  %-24s %-12s %3d%% %s\n", c.ID, c.Name, c.Platform, c.CompletionPercentage, c.Status)
		}
	case "add":
		name, err := GetSimpleText(a.reader, "Name", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		platform, err := GetSimpleText(a.reader, "Platform", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		link, err := GetSimpleText(a.reader, "Link (optional)", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		id, err := a.services.Courses.Add(ctx, models.Course{Name: name, Platform: platform, Link: link})
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Printf("Added course %d\n", id)
	case "progress":
		if len(args) < 3 {
			fmt.Println("Usage: courses progress <id> <pct>")
			return
		}
		id, err := parseID(args[1])
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		pct, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Println("not a percentage:", args[2])
			return
		}
		if err := a.services.Courses.UpdateProgress(ctx, id, pct); err != nil {
			fmt.Println(err.Error())
		}
	case "delete":
		a.deleteByID(args[1:], "courses delete <id>", a.services.Courses.Delete)
	default:
		fmt.Println("Usage: courses [list|add|progress <id> <pct>|delete <id>]")
	}
}

func (a *App) books(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		list, err := a.services.Books.List(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		for _, b := range list {
			rating := "-"
			if b.Rating != nil {
				rating = strconv.Itoa(*b.Rating)
			}
			fmt.Printf("%4d  %-28s %-16s %-8s %s\n", b.ID, b.Title, b.Author, b.Status, rating)
		}
	case "add":
		title, err := GetSimpleText(a.reader, "Title", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		author, err := GetSimpleText(a.reader, "Author", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		status, err := GetSimpleText(a.reader, "Status (to-read/reading/read)", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		id, err := a.services.Books.Add(ctx, models.Book{
			Title: title, Author: author, Status: models.BookStatus(status),
		})
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Printf("Added book %d\n", id)
	case "cover":
		a.bookCover(ctx, args[1:])
	case "show":
		a.bookShow(ctx, args[1:])
	case "rate":
		if len(args) < 3 {
			fmt.Println("Usage: books rate <id> <1-5>")
			return
		}
		id, err := parseID(args[1])
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		rating, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Println("not a rating:", args[2])
			return
		}
		if err := a.services.Books.Rate(ctx, id, rating); err != nil {
			fmt.Println(err.Error())
		}
	case "delete":
		a.deleteByID(args[1:], "books delete <id>", a.services.Books.Delete)
	default:
		fmt.Println("Usage: books [list|add|cover <id> <file>|show <id>|rate <id> <1-5>|delete <id>]")
	}
}

func (a *App) bookCover(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: books cover <id> <file>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := a.services.Books.AttachCover(ctx, id, data); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Cover attached")
}

// bookShow materializes a small cover preview for an external viewer.
func (a *App) bookShow(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: books show <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	b, err := a.services.Books.Get(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if len(b.Cover) == 0 {
		fmt.Println("No cover attached")
		return
	}
	h, err := a.renderer.RenderThumbnail(b.Cover)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println(h.Path)
}
