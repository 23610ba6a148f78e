// Command seed fills a posts API with journal entries and prints what it holds.
//
// By default it creates the two built-in sample entries; -n creates that many
// numbered entries instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"minimalpost/internal/config"
	"minimalpost/internal/core/posts"
	"minimalpost/internal/journal"
)

func main() {
	cfg, err := config.LoadJournal()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	apiURL := flag.String("api", cfg.APIURL, "posts API base URL")
	count := flag.Int("n", 0, "number of numbered entries to create (0 creates the sample entries)")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	listOnly := flag.Bool("list", false, "only list existing entries")
	flag.Parse()

	client := journal.NewClient(*apiURL, &http.Client{Timeout: *timeout})
	ctx := context.Background()

	failed := 0
	if !*listOnly {
		for _, req := range seedRequests(*count) {
			created, err := client.CreatePost(ctx, req)
			if err != nil {
				failed++
				log.Printf("[SEED] Failed to create %q: %v", req.Title, err)
				continue
			}
			log.Printf("[SEED] Created post %s", created.ID)
		}
	}

	list, err := client.ListPosts(ctx)
	if err != nil {
		fmt.Println(color.New(color.FgRed).Render(fmt.Sprintf("failed to list posts from %s: %v", client.BaseURL(), err)))
		os.Exit(1)
	}

	printPosts(list)

	status := fmt.Sprintf("%d posts at %s", len(list), client.BaseURL())
	if failed > 0 {
		fmt.Println(color.New(color.FgRed).Render(fmt.Sprintf("%s, %d creates failed", status, failed)))
		os.Exit(1)
	}
	fmt.Println(color.New(color.FgGreen).Render(status))
}

// seedRequests returns the sample entries, or n numbered entries when n > 0
func seedRequests(n int) []posts.CreatePostRequest {
	if n <= 0 {
		return lo.Map(journal.FallbackPosts(), func(p posts.Post, _ int) posts.CreatePostRequest {
			return posts.CreatePostRequest{Title: p.Title, Content: p.Content}
		})
	}
	return lo.Times(n, func(i int) posts.CreatePostRequest {
		return posts.CreatePostRequest{
			Title:   fmt.Sprintf("Entry %d", i+1),
			Content: fmt.Sprintf("Seeded entry number %d.", i+1),
		}
	})
}

func printPosts(list []posts.Post) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Created", "Title", "Content"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, p := range list {
		table.Append([]string{p.ID, p.CreatedAt, truncate(p.Title, 40), truncate(p.Content, 60)})
	}
	table.Render()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
