// Command askweb answers natural-language questions from the terminal. It
// grounds answers in Exa web search results (or an OpenWeatherMap lookup for
// weather questions) and generates the final text with a hosted LLM.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/smallnest/askweb/cache"
	"github.com/smallnest/askweb/config"
	"github.com/smallnest/askweb/exa"
	"github.com/smallnest/askweb/history"
	"github.com/smallnest/askweb/log"
	"github.com/smallnest/askweb/rag"
	"github.com/smallnest/askweb/render"
	"github.com/smallnest/askweb/report"
	"github.com/smallnest/askweb/scrape"
	"github.com/smallnest/askweb/weather"
)

const contextPreviewLimit = 1000

type app struct {
	cfg        *config.Config
	engine     *rag.Engine
	weatherCli *weather.Client
	hist       *history.Store
	stdin      *bufio.Reader
	reportPath string
}

func main() {
	numResults := flag.Int("n", 5, "number of search results to retrieve")
	city := flag.String("city", "", "default city for weather queries")
	reportPath := flag.String("report", "", "write the answer as an HTML report to this file")
	historyN := flag.Int("history", 0, "list the n most recent queries and exit")
	noCache := flag.Bool("no-cache", false, "bypass the search cache")
	flag.Parse()

	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)
	if *city != "" {
		cfg.DefaultCity = *city
	}

	if *historyN > 0 {
		if err := listHistory(cfg, *historyN); err != nil {
			fmt.Fprintln(os.Stderr, render.Errorf("history: %v", err))
			os.Exit(1)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, render.Errorf("configuration: %v", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := newApp(ctx, cfg, *numResults, *noCache)
	if err != nil {
		fmt.Fprintln(os.Stderr, render.Errorf("startup: %v", err))
		os.Exit(1)
	}
	defer cleanup()
	a.reportPath = *reportPath

	fmt.Println(render.Banner("askweb: search-grounded answers"))

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		query = a.prompt("\nPlease enter your question: ")
	}
	if query == "" {
		fmt.Fprintln(os.Stderr, render.Errorf("please enter a valid question"))
		os.Exit(1)
	}

	if err := a.run(ctx, query); err != nil {
		fmt.Fprintln(os.Stderr, render.Errorf("%v", err))
		os.Exit(1)
	}
}

func newApp(ctx context.Context, cfg *config.Config, numResults int, noCache bool) (*app, func(), error) {
	searcher, err := exa.New(exa.WithAPIKey(cfg.ExaAPIKey))
	if err != nil {
		return nil, nil, fmt.Errorf("create exa client: %w", err)
	}

	model, err := rag.NewModel(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create model: %w", err)
	}

	engineOpts := []rag.EngineOption{
		rag.WithNumResults(numResults),
		rag.WithContentFetcher(scrape.New()),
	}

	var closers []func()
	if cfg.RedisAddr != "" && !noCache {
		searchCache := cache.New(cache.Options{Addr: cfg.RedisAddr})
		engineOpts = append(engineOpts, rag.WithCache(searchCache))
		closers = append(closers, func() { searchCache.Close() })
	}

	engine, err := rag.NewEngine(model, searcher, engineOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create engine: %w", err)
	}

	a := &app{
		cfg:    cfg,
		engine: engine,
		stdin:  bufio.NewReader(os.Stdin),
	}

	if cfg.OpenWeatherAPIKey != "" {
		a.weatherCli, err = weather.New(weather.WithAPIKey(cfg.OpenWeatherAPIKey))
		if err != nil {
			return nil, nil, fmt.Errorf("create weather client: %w", err)
		}
	}

	if cfg.HistoryDB != "" {
		hist, err := history.NewStore(history.Options{Path: cfg.HistoryDB})
		if err != nil {
			// History is a convenience, not a requirement.
			log.Warn("opening history store failed: %v", err)
		} else {
			a.hist = hist
			closers = append(closers, func() { hist.Close() })
		}
	}

	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	return a, cleanup, nil
}

func (a *app) run(ctx context.Context, query string) error {
	if weather.IsWeatherQuery(query) {
		a.answerWeather(ctx, query)

		confirm := a.prompt("\nWould you like to also search for related information? (y/n): ")
		if !strings.EqualFold(confirm, "y") {
			return nil
		}
	}

	return a.answerWithSearch(ctx, query)
}

func (a *app) answerWeather(ctx context.Context, query string) {
	if a.weatherCli == nil {
		fmt.Println(render.Errorf("weather API key not configured, add OPENWEATHER_API_KEY to your .env file"))
		return
	}

	city := weather.CityFromQuery(query, a.cfg.DefaultCity)
	log.Debug("weather query, city %q", city)

	obs, err := a.weatherCli.Current(ctx, city)
	if err != nil {
		fmt.Println(render.Errorf("fetching weather: %v", err))
		return
	}

	fmt.Println()
	fmt.Println(render.Answer(obs.String()))
	a.record(ctx, query, history.KindWeather, obs.String(), nil)
}

func (a *app) answerWithSearch(ctx context.Context, query string) error {
	fmt.Println(render.Dim(fmt.Sprintf("Searching the web for: %q...", query)))

	answer, err := a.engine.Answer(ctx, query)
	if errors.Is(err, rag.ErrNoResults) {
		return fmt.Errorf("failed to retrieve search results")
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(render.Heading("Retrieved Context"))
	fmt.Println(render.Dim(preview(answer.Context, contextPreviewLimit)))

	fmt.Println()
	fmt.Println(render.Heading("Answer"))
	fmt.Println(render.Answer(answer.Text))
	fmt.Println()
	fmt.Println(render.Sources(answer.Sources))

	a.record(ctx, query, history.KindSearch, answer.Text, answer.Sources)

	if a.reportPath != "" {
		if err := report.Write(a.reportPath, query, answer.Text, answer.Sources); err != nil {
			return err
		}
		fmt.Println(render.Dim(fmt.Sprintf("Report written to %s", a.reportPath)))
	}

	return nil
}

func (a *app) record(ctx context.Context, question, kind, answer string, sources []string) {
	if a.hist == nil {
		return
	}
	entry := history.Entry{Question: question, Kind: kind, Answer: answer, Sources: sources}
	if err := a.hist.Append(ctx, &entry); err != nil {
		log.Warn("recording history failed: %v", err)
	}
}

func (a *app) prompt(message string) string {
	fmt.Print(message)
	line, _ := a.stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func listHistory(cfg *config.Config, n int) error {
	hist, err := history.NewStore(history.Options{Path: cfg.HistoryDB})
	if err != nil {
		return err
	}
	defer hist.Close()

	entries, err := hist.Recent(context.Background(), n)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  [%s]  %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04"), entry.Kind, entry.Question)
		fmt.Println(render.Dim("    " + rag.Shorten(entry.Answer, 120, "...")))
	}
	return nil
}

func preview(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
