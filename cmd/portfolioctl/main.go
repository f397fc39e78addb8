// Command portfolioctl exports and imports the whole portfolio document
// against a running server.
//
//	portfolioctl -api http://localhost:8080 -email admin@example.com -password ... export > site.json
//	portfolioctl -api http://localhost:8080 -token $TOKEN import site.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/internal/portfolio"
	"github.com/fastygo/portfolio/internal/portfolio/httpgateway"
	"github.com/fastygo/portfolio/pkg/logger"
)

type options struct {
	api      string
	token    string
	email    string
	password string
	timeout  time.Duration
	server   bool
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.api, "api", envOr("PORTFOLIO_API", "http://localhost:8080"), "base URL of the portfolio server")
	flag.StringVar(&opts.token, "token", os.Getenv("PORTFOLIO_TOKEN"), "bearer token for write access")
	flag.StringVar(&opts.email, "email", os.Getenv("PORTFOLIO_EMAIL"), "admin email, used when -token is empty")
	flag.StringVar(&opts.password, "password", os.Getenv("PORTFOLIO_PASSWORD"), "admin password, used when -token is empty")
	flag.DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall deadline")
	flag.BoolVar(&opts.server, "server", false, "import: send the document in one request instead of per resource")
	flag.BoolVar(&opts.verbose, "v", false, "log each request outcome")
	flag.Usage = usage
	flag.Parse()

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{Level: level, Encoding: "console"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if err := run(ctx, opts, flag.Args(), os.Stdin, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "portfolioctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: portfolioctl [flags] <command> [file]

commands:
  login          print a bearer token for -email/-password
  export         write the current document as JSON to stdout
  import [file]  save a document read from file (or stdin)

flags:
`)
	flag.PrintDefaults()
}

func run(ctx context.Context, opts options, args []string, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}
	client := httpgateway.New(opts.api, httpgateway.WithToken(opts.token))

	switch args[0] {
	case "login":
		token, err := client.Login(ctx, opts.email, opts.password)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, token.AccessToken)
		return err

	case "export":
		doc := portfolio.NewFetcher(client, log).Fetch(ctx)
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case "import":
		raw, err := readInput(args[1:], stdin)
		if err != nil {
			return err
		}
		doc, err := portfolio.DecodeDocument(raw)
		if err != nil {
			return err
		}
		if opts.token == "" {
			if _, err := client.Login(ctx, opts.email, opts.password); err != nil {
				return errors.Wrap(err, "login")
			}
		}

		var report portfolio.Report
		if opts.server {
			report, err = client.PutDocument(ctx, doc)
			if err != nil {
				return err
			}
		} else {
			report = portfolio.NewWriter(client, nil, log).Save(ctx, doc)
		}
		return printReport(stdout, report)

	default:
		usage()
		return errors.Errorf("unknown command %q", args[0])
	}
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(stdin)
		return raw, errors.Wrap(err, "read stdin")
	}
	raw, err := os.ReadFile(args[0])
	return raw, errors.Wrapf(err, "read %s", args[0])
}

func printReport(w io.Writer, report portfolio.Report) error {
	for _, o := range report.Outcomes {
		line := fmt.Sprintf("%-12s %-40s %s", o.Resource, o.Key, o.Status)
		if o.Error != "" {
			line += ": " + o.Error
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if failed := report.Failed(); len(failed) > 0 {
		return errors.Errorf("%d of %d items not saved", len(failed), len(report.Outcomes))
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
