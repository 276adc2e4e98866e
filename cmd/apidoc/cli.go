package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/apidoc"
	dochttp "github.com/fwojciec/apidoc/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Resolver apidoc.Resolver
	Search   apidoc.SearchService
	Server   *dochttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data    string `short:"d" env:"APIDOC_DATA" default:"./data" help:"Catalog directory containing api_index.json"`
	Verbose bool   `short:"v" help:"Log service calls to stderr"`

	Search     SearchCmd     `cmd:"" help:"Search types by name and description"`
	Namespace  NamespaceCmd  `cmd:"" help:"List the types in a namespace"`
	Class      ClassCmd      `cmd:"" help:"Show a type and its members"`
	Member     MemberCmd     `cmd:"" help:"Search members by name across all types"`
	Namespaces NamespacesCmd `cmd:"" help:"List all namespaces"`
	Page       PageCmd       `cmd:"" help:"Show the documentation page for an identifier or type"`
	Serve      ServeCmd      `cmd:"" help:"Serve the catalog as a JSON API"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Keyword []string `arg:"" help:"Keyword or words to search for"`
}

// NamespaceCmd is the "namespace" subcommand.
type NamespaceCmd struct {
	Name []string `arg:"" help:"Namespace name or fragment"`
}

// ClassCmd is the "class" subcommand.
type ClassCmd struct {
	Name []string `arg:"" help:"Type name or fully qualified name"`
}

// MemberCmd is the "member" subcommand.
type MemberCmd struct {
	Name []string `arg:"" help:"Member name or fragment"`
}

// NamespacesCmd is the "namespaces" subcommand.
type NamespacesCmd struct{}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	ID   string `xor:"target" required:"" help:"Help identifier (e.g. T:Autodesk.Revit.DB.Wall)"`
	Type string `xor:"target" required:"" help:"Fully qualified type name (e.g. Autodesk.Revit.DB.Wall)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string  `env:"APIDOC_ADDR" default:":8080" help:"Listen address"`
	Rate  float64 `env:"APIDOC_RATE" default:"0" help:"Requests per second allowed per client (0 disables limiting)"`
	Burst int     `default:"20" help:"Burst size per client when rate limiting"`
}
