package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Jbansal2/PlayBolt/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type listResponse struct {
	Total int           `json:"total"`
	Items []models.Game `json:"items"`
}

func main() {
	global := flag.NewFlagSet("playbolt", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	size := global.Int("n", 20, "page size for list commands")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	api := *baseURL

	switch args[0] {
	case "list":
		printGames(getList(client, fmt.Sprintf("%s/api/games?page_size=%d", api, *size)))
	case "top":
		printGames(getList(client, fmt.Sprintf("%s/api/games/top-rated?page_size=%d", api, *size)))
	case "new":
		printGames(getList(client, fmt.Sprintf("%s/api/games/new-releases?page_size=%d", api, *size)))
	case "search":
		if len(args) < 2 {
			log.Fatal("search needs a query")
		}
		q := url.QueryEscape(strings.Join(args[1:], " "))
		printGames(getList(client, fmt.Sprintf("%s/api/games/search?q=%s", api, q)))
	case "details":
		if len(args) < 2 {
			log.Fatal("details needs a game id")
		}
		var game models.Game
		getJSON(client, fmt.Sprintf("%s/api/games/%s", api, args[1]), &game)
		fmt.Printf("%s (%d)\n", game.Name, game.ID)
		fmt.Printf("  genre:     %s\n", game.PrimaryGenre())
		fmt.Printf("  platform:  %s\n", game.PrimaryPlatform())
		fmt.Printf("  developer: %s\n", game.PrimaryDeveloper())
		fmt.Printf("  rating:    %.1f\n", game.Rating)
		if game.Released != "" {
			fmt.Printf("  released:  %s\n", game.Released)
		} else {
			fmt.Println("  released:  TBA")
		}
		if game.Description != "" {
			fmt.Printf("  %s\n", game.Description)
		}
	case "category":
		if len(args) < 2 {
			log.Fatal("category needs a slug")
		}
		printGames(getList(client, fmt.Sprintf("%s/api/games?category=%s", api, url.QueryEscape(args[1]))))
	default:
		printUsage()
		os.Exit(1)
	}
}

func getJSON(client *http.Client, target string, out any) {
	resp, err := client.Get(target)
	if err != nil {
		log.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Fatalf("decode: %v", err)
	}
}

func getList(client *http.Client, target string) listResponse {
	var list listResponse
	getJSON(client, target, &list)
	return list
}

func printGames(list listResponse) {
	for _, g := range list.Items {
		released := g.Released
		if released == "" {
			released = "TBA"
		}
		fmt.Printf("%6d  %-40s  %-14s  %.1f  %s\n", g.ID, g.Name, g.PrimaryGenre(), g.Rating, released)
	}
	fmt.Printf("total: %d\n", list.Total)
}

func printUsage() {
	fmt.Println(`usage: playbolt [-api URL] [-n SIZE] <command>

commands:
  list               full catalog
  top                top-rated games
  new                new releases
  search <query>     search by name or genre
  details <id>       one game
  category <slug>    games for one category`)
}
