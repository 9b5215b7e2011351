// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Command posterlookup prints the poster URL found for each title argument.
//
// It uses the same configuration and provider chain as the server, so it is
// the quickest way to check a TMDB key or the web fallback:
//
//	TMDB_API_KEY=... posterlookup "Toy Story (1995)" "Heat"
//	posterlookup -json -providers tmdb-web "Heat"
//
// Exit status is 0 when every lookup completed (found or not found), 1 when
// any provider failed, and 2 for usage or configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/poster"
)

type lookupFunc func(ctx context.Context, title string) (poster.Result, error)

type options struct {
	providers string
	timeout   time.Duration
	asJSON    bool
	titles    []string
}

// line is one output record in -json mode.
type line struct {
	Title    string `json:"title"`
	Query    string `json:"query"`
	URL      string `json:"url,omitempty"`
	Provider string `json:"provider,omitempty"`
	Found    bool   `json:"found"`
	Error    string `json:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration: %v\n", err)
		return 2
	}
	logging.Init(logging.Config{Level: "warn", Format: "console", Output: stderr})

	pc := poster.ConfigFrom(cfg.Poster)
	if opts.providers != "" {
		pc.Providers = splitProviders(opts.providers)
	}
	svc, err := poster.New(pc)
	if err != nil {
		fmt.Fprintf(stderr, "poster lookup: %v\n", err)
		return 2
	}

	return lookupAll(context.Background(), svc.Lookup, opts, stdout)
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("posterlookup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: posterlookup [flags] title [title...]")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.providers, "providers", "", "comma separated provider order (tmdb-api,tmdb-web); default from config")
	fs.DurationVar(&opts.timeout, "timeout", 10*time.Second, "overall deadline per title")
	fs.BoolVar(&opts.asJSON, "json", false, "print one JSON object per title")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.titles = fs.Args()
	if len(opts.titles) == 0 {
		fs.Usage()
		return options{}, errors.New("no titles")
	}
	return opts, nil
}

func splitProviders(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func lookupAll(ctx context.Context, lookup lookupFunc, opts options, stdout io.Writer) int {
	code := 0
	enc := json.NewEncoder(stdout)

	for _, title := range opts.titles {
		tctx, cancel := context.WithTimeout(ctx, opts.timeout)
		res, err := lookup(tctx, title)
		cancel()

		out := line{Title: title, Query: poster.CleanTitle(title)}
		switch {
		case err == nil:
			out.URL, out.Provider, out.Found = res.URL, res.Provider, true
		case errors.Is(err, poster.ErrNotFound):
		default:
			out.Error = err.Error()
			code = 1
		}

		if opts.asJSON {
			_ = enc.Encode(out)
			continue
		}
		switch {
		case out.Found:
			fmt.Fprintf(stdout, "%s\t%s\t(%s)\n", title, out.URL, out.Provider)
		case out.Error != "":
			fmt.Fprintf(stdout, "%s\terror: %s\n", title, out.Error)
		default:
			fmt.Fprintf(stdout, "%s\tno poster found for %q\n", title, out.Query)
		}
	}
	return code
}
