package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/DhairyaS450/personal-website-sub000/pkg/content"
	"github.com/DhairyaS450/personal-website-sub000/pkg/content/draft"
	"github.com/DhairyaS450/personal-website-sub000/pkg/content/editor"
)

// Line-oriented admin console over the content API. Exercises the same
// session, draft and editor layers a UI would: nothing here talks to the
// store directly.
func main() {
	baseURL := os.Getenv("SITE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	creds, err := content.NewFileStore()
	if err != nil {
		color.Yellow("⚠️  Credential store unavailable (%v), tokens will not persist", err)
	}

	var store content.CredentialStore
	if creds != nil {
		store = creds
	} else {
		store = &content.MemoryStore{}
	}

	session := content.NewSession(content.NewClient(baseURL), store)
	ctx := context.Background()

	session.Load(ctx)
	if err := session.Err(); err != nil {
		color.Yellow("⚠️  Fetch failed (%v), showing built-in fallback content", err)
	}

	academics := draft.NewAcademicsPage(session)
	blog := draft.NewBlogPage(session)

	color.Cyan("Connected to %s. Type 'help' for commands.", baseURL)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt(session))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")

		switch cmd {
		case "help":
			printHelp()
		case "quit", "exit":
			return
		case "login":
			if err := session.Login(ctx, rest); err != nil {
				color.Red("❌ Login failed: %v", err)
				continue
			}
			color.Green("✅ Logged in")
		case "logout":
			session.SetCredential("")
			color.Green("✅ Logged out")
		case "reload":
			session.Load(ctx)
			if err := session.Err(); err != nil {
				color.Red("❌ Reload failed: %v", err)
				continue
			}
			academics = draft.NewAcademicsPage(session)
			blog = draft.NewBlogPage(session)
			color.Green("✅ Reloaded")
		case "show":
			showDocument(session, academics)
		case "edit":
			academics.SetEditMode(ctx, true)
			blog.SetEditMode(ctx, true)
			color.Cyan("Edit mode on. 'done' commits, 'discard' reverts.")
		case "done":
			ok := academics.SetEditMode(ctx, false)
			ok = blog.SetEditMode(ctx, false) && ok
			if !ok {
				color.Red("❌ Commit failed: %v", session.Err())
				continue
			}
			color.Green("✅ Committed")
		case "discard":
			academics.Discard()
			blog.Discard()
			academics.SetEditMode(ctx, false)
			blog.SetEditMode(ctx, false)
			color.Yellow("⚠️  Edits discarded")
		case "title":
			editTitle(academics, rest)
		case "goal":
			goalCommand(academics, rest)
		case "post":
			postCommand(blog, rest)
		default:
			color.Red("❌ Unknown command %q, try 'help'", cmd)
		}
	}
}

func prompt(session *content.Session) string {
	if session.EditMode() {
		return color.YellowString("admin(edit)> ")
	}
	return color.CyanString("admin> ")
}

func printHelp() {
	fmt.Println(`Commands:
  login <password>        authenticate and store the token
  logout                  clear the stored token
  reload                  refetch the document
  show                    print a summary of the document
  edit / done / discard   edit-mode lifecycle (done commits)
  title <text>            set the academics title (inline editor)
  goal add <text>         append an academic goal
  goal rm <index>         remove an academic goal
  post new <title>        create a draft blog post
  post retitle <id> <t>   retitle a post (slug is recomputed)
  post publish <id>       publish a post
  quit`)
}

func showDocument(session *content.Session, academics *draft.AcademicsPage) {
	doc := session.Content()
	a := academics.Academics()
	color.White("%s — %s", doc.Home.Headline, doc.Home.Subheadline)
	fmt.Printf("Projects: %d  Posts: %d  Files: %d\n", len(doc.Projects), len(doc.BlogPosts), len(doc.Files))
	fmt.Printf("Academics: %s (%s)\n", a.Title, a.Subtitle)
	for i, g := range a.AcademicGoals {
		fmt.Printf("  goal[%d] %s\n", i, g)
	}
}

// editTitle drives the field editor the way a UI would: begin, type, blur.
func editTitle(academics *draft.AcademicsPage, text string) {
	fe := editor.NewFieldEditor(academics.Academics().Title, false, academics.SetTitle)
	fe.Begin()
	fe.Input(text)
	fe.Blur()
	color.Green("✅ Title is now %q", fe.Value())
}

func goalCommand(academics *draft.AcademicsPage, rest string) {
	sub, arg, _ := strings.Cut(rest, " ")
	le := editor.NewListEditor(academics.Academics().AcademicGoals, academics.SetGoals)
	switch sub {
	case "add":
		before := len(le.Items())
		le.Add(arg)
		if len(le.Items()) == before {
			color.Yellow("⚠️  Empty goal ignored")
			return
		}
		color.Green("✅ Goal added")
	case "rm":
		i, err := strconv.Atoi(arg)
		if err != nil {
			color.Red("❌ Bad index %q", arg)
			return
		}
		le.Remove(i)
		color.Green("✅ Goal removed")
	default:
		color.Red("❌ Usage: goal add <text> | goal rm <index>")
	}
}

func postCommand(blog *draft.BlogPage, rest string) {
	sub, arg, _ := strings.Cut(rest, " ")
	switch sub {
	case "new":
		post := blog.NewPost(arg, "", "", nil)
		color.Green("✅ Draft post %s (slug %q)", post.Id, post.Slug)
	case "retitle":
		id, title, ok := strings.Cut(arg, " ")
		if !ok {
			color.Red("❌ Usage: post retitle <id> <title>")
			return
		}
		blog.Retitle(id, title)
		color.Green("✅ Retitled")
	case "publish":
		blog.SetPublished(arg, true)
		color.Green("✅ Published")
	default:
		color.Red("❌ Usage: post new <title> | post retitle <id> <title> | post publish <id>")
	}
}
