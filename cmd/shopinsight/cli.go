package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/shopinsight"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Brands shopinsight.BrandService

	// NewScraper returns a scraper fetching up to concurrency targeted
	// pages at once.
	NewScraper func(concurrency int) shopinsight.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string `name:"db" env:"SHOPINSIGHT_DB" help:"Database path (default ~/.shopinsight/shopinsight.db)"`
	UserAgent string `name:"user-agent" env:"SHOPINSIGHT_USER_AGENT" help:"User-Agent header sent to stores"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`

	Fetch  FetchCmd  `cmd:"" help:"Scrape a store and save its brand profile"`
	List   ListCmd   `cmd:"" help:"List saved brand profiles"`
	Show   ShowCmd   `cmd:"" help:"Show a saved brand profile"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved brand profile"`
	Serve  ServeCmd  `cmd:"" help:"Serve the brand API over HTTP"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL         string `arg:"" help:"Store root URL"`
	NoSave      bool   `help:"Print the profile without saving it"`
	JSON        bool   `help:"Print the profile as JSON"`
	Out         string `short:"o" type:"path" help:"Also write the profile as JSON into this directory"`
	Concurrency int    `short:"c" default:"1" help:"Targeted page fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Store string `help:"Only list profiles for this store"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Brand ID"`
	JSON bool   `help:"Print the profile as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Brand ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `env:"SHOPINSIGHT_ADDR" default:":8000" help:"Listen address"`
	Origins     []string `default:"*" help:"Allowed CORS origins"`
	RateLimit   float64  `default:"0.2" help:"Scrape requests per second per client (0 disables)"`
	Burst       int      `default:"3" help:"Scrape request burst per client"`
	Concurrency int      `short:"c" default:"1" help:"Targeted page fetch limit"`
}
