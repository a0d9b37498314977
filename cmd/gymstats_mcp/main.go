// Package main runs the gymcoach MCP server over stdio (for local editor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
	gymstatsmcp "github.com/2beens/gymcoach/internal/gymstats/mcp"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	cycleCatalog, err := cycles.DefaultCatalog()
	if err != nil {
		log.Fatalf("cycle catalog: %v", err)
	}

	catalogRepo := catalog.NewRepo(dbPool)
	coachService := coach.NewService(coach.ServiceParams{
		Sessions:        sessions.NewRepo(dbPool),
		Cycles:          cycles.NewService(cycleCatalog, cycles.NewStateRepo(dbPool), nil),
		Catalog:         catalog.New(catalogRepo),
		CustomExercises: catalogRepo,
		Analyzer:        analysis.NewAnalyzer(analysis.AnalyzerParams{}),
	})
	server := gymstatsmcp.NewServer(gymstatsmcp.NewPoolSchemaRepo(dbPool), coachService)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
