package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
	shopgin "github.com/fwojciec/shopinsight/gin"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Brands   shopinsight.BrandService
	Insights shopinsight.InsightService
	Server   *shopgin.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB              string        `name:"db" env:"SHOPINSIGHT_DB" help:"SQLite database path (default ~/.shopinsight/shopinsight.db)"`
	Render          bool          `help:"Render pages in headless Chrome"`
	Timeout         time.Duration `default:"10s" help:"Per-request timeout"`
	MaxPages        int           `default:"100" help:"Maximum catalog pages to request"`
	CatalogDeadline time.Duration `default:"2m" help:"Overall deadline for catalog pagination"`
	RPS             float64       `name:"rps" default:"0" help:"Page requests per second per domain (0 disables)"`
	Verbose         bool          `short:"v" help:"Log fetches and catalog pages"`

	Fetch       FetchCmd       `cmd:"" help:"Fetch insights for a store and save them"`
	Brands      BrandsCmd      `cmd:"" help:"List saved brands"`
	Show        ShowCmd        `cmd:"" help:"Show a saved brand"`
	Delete      DeleteCmd      `cmd:"" help:"Delete a saved brand"`
	Competitors CompetitorsCmd `cmd:"" help:"Find competing stores and fetch their insights"`
	Serve       ServeCmd       `cmd:"" help:"Serve the insight API over HTTP"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL  string `arg:"" help:"Store URL"`
	JSON bool   `name:"json" help:"Print the insight as JSON"`
}

// BrandsCmd is the "brands" subcommand.
type BrandsCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL string `arg:"" help:"Store URL"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Store URL"`
	Force bool   `help:"Confirm deletion"`
}

// CompetitorsCmd is the "competitors" subcommand.
type CompetitorsCmd struct {
	URL  string `arg:"" help:"Store URL"`
	Max  int    `short:"n" default:"3" help:"Maximum competitors to analyze"`
	JSON bool   `name:"json" help:"Print the report as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string   `default:":8000" help:"Listen address"`
	Origins []string `name:"origin" help:"Allowed CORS origin, trailing * matches any suffix (repeatable)"`
}
