// Command scriptref is the CLI for the Bible reference parser.
// It parses references, extracts them from text files and converts between
// display, OSIS and canonical id forms.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/FocuswithJustin/scriptref/core/canon"
	"github.com/FocuswithJustin/scriptref/core/ref"
	"github.com/FocuswithJustin/scriptref/core/sqlite"
	"github.com/FocuswithJustin/scriptref/internal/logging"
	"github.com/FocuswithJustin/scriptref/internal/validation"
)

const version = "0.1.0"

// configPaths are the JSON configuration files consulted for flag values not
// given on the command line, in order.
var configPaths = []string{"~/.config/scriptref/config.json", "./scriptref.json"}

// CLI defines the command-line interface for scriptref.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"warn" env:"SCRIPTREF_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format" enum:"text,json" default:"text" env:"SCRIPTREF_LOG_FORMAT"`
	Aliases   string `name:"aliases" help:"YAML file of extra book abbreviations" env:"SCRIPTREF_ALIASES"`
	BooksDB   string `name:"books-db" help:"SQLite database with a books table to use instead of the built-in canon" env:"SCRIPTREF_BOOKS_DB"`
	JSON      bool   `name:"json" help:"Write results as JSON lines"`

	Parse   ParseCmd   `cmd:"" help:"Parse references like \"John 3:16\" or \"Rom 8:28-30\""`
	OSIS    OSISCmd    `cmd:"" name:"osis" help:"Parse OSIS ids like \"Gen.1.1-3\""`
	Extract ExtractCmd `cmd:"" help:"Extract every reference from text files or stdin"`
	ID      IDGroup    `cmd:"" name:"id" help:"Canonical id operations"`
	Suggest SuggestCmd `cmd:"" help:"Suggest books for a name prefix"`
	Books   BooksCmd   `cmd:"" help:"List the books of the loaded canon"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// IDGroup contains canonical id operations.
type IDGroup struct {
	Encode IDEncodeCmd `cmd:"" help:"Encode references as canonical ids"`
	Decode IDDecodeCmd `cmd:"" help:"Decode canonical ids"`
}

// session is bound into every command's Run method.
type session struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	parser *ref.Parser
	json   bool
}

// emit writes v as a JSON line in --json mode and text otherwise.
func (rt *session) emit(v any, text string) error {
	if rt.json {
		return json.NewEncoder(rt.stdout).Encode(v)
	}
	_, err := fmt.Fprintln(rt.stdout, text)
	return err
}

// failures is returned when some inputs could not be parsed. Each failure has
// already been logged.
type failures struct {
	failed, total int
}

func (f failures) Error() string {
	return fmt.Sprintf("%d of %d references failed to parse", f.failed, f.total)
}

// parseEach runs fn over inputs, emitting successes and logging failures.
func (rt *session) parseEach(command string, inputs []string, fn func(string) (ref.Reference, error), render func(ref.Reference) (any, string)) error {
	failed := 0
	for _, in := range inputs {
		r, err := fn(in)
		if err != nil {
			failed++
			logging.ParseFailure(in, err, "command", command)
			continue
		}
		v, text := render(r)
		if err := rt.emit(v, text); err != nil {
			return err
		}
	}
	if failed > 0 {
		return failures{failed: failed, total: len(inputs)}
	}
	return nil
}

func renderReference(r ref.Reference) (any, string) {
	return r, r.DisplayText
}

// ParseCmd parses display-form references.
type ParseCmd struct {
	Refs     []string `arg:"" help:"References to parse"`
	Flexible bool     `help:"Also accept \"Book chapter verse\" without a colon"`
}

func (c *ParseCmd) Run(rt *session) error {
	fn := rt.parser.Parse
	if c.Flexible {
		fn = rt.parser.ParseFlexible
	}
	return rt.parseEach("parse", c.Refs, fn, renderReference)
}

// OSISCmd parses OSIS ids.
type OSISCmd struct {
	IDs []string `arg:"" help:"OSIS ids to parse"`
}

func (c *OSISCmd) Run(rt *session) error {
	return rt.parseEach("osis", c.IDs, rt.parser.ParseOSIS, renderReference)
}

// extraction is one reference found in one source.
type extraction struct {
	Source    string        `json:"source"`
	Reference ref.Reference `json:"reference"`
}

// ExtractCmd scans text for references.
type ExtractCmd struct {
	Files []string `arg:"" optional:"" help:"Text files to scan (stdin if none)"`
	Jobs  int      `help:"Files read concurrently" default:"4"`
}

func (c *ExtractCmd) Run(rt *session) error {
	if len(c.Files) == 0 {
		data, err := validation.ReadAll(rt.stdin, "stdin")
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		refs := slices.Collect(rt.parser.ExtractAll(string(data)))
		logging.ExtractionSummary("-", len(refs))
		return rt.emitExtractions("-", refs, false)
	}

	for _, path := range c.Files {
		if err := validation.CheckFile(path, validation.FileTypeText); err != nil {
			return fmt.Errorf("invalid input file: %w", err)
		}
	}

	results := make([][]ref.Reference, len(c.Files))
	g, gctx := errgroup.WithContext(rt.ctx)
	g.SetLimit(max(c.Jobs, 1))
	for i, path := range c.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			results[i] = slices.Collect(rt.parser.ExtractAll(string(data)))
			logging.ExtractionSummary(path, len(results[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Output follows argument order regardless of completion order.
	for i, path := range c.Files {
		if err := rt.emitExtractions(path, results[i], len(c.Files) > 1); err != nil {
			return err
		}
	}
	return nil
}

func (rt *session) emitExtractions(source string, refs []ref.Reference, prefixed bool) error {
	for _, r := range refs {
		text := r.DisplayText
		if prefixed {
			text = source + "\t" + text
		}
		if err := rt.emit(extraction{Source: source, Reference: r}, text); err != nil {
			return err
		}
	}
	return nil
}

// encodedID pairs a reference with its canonical id.
type encodedID struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

// IDEncodeCmd encodes references as canonical ids.
type IDEncodeCmd struct {
	Refs []string `arg:"" help:"References to encode"`
}

func (c *IDEncodeCmd) Run(rt *session) error {
	return rt.parseEach("id encode", c.Refs, rt.parser.ParseFlexible, func(r ref.Reference) (any, string) {
		id := ref.CanonicalID(r)
		return encodedID{ID: id, Reference: r.DisplayText}, id
	})
}

// IDDecodeCmd decodes canonical ids into references.
type IDDecodeCmd struct {
	IDs []string `arg:"" help:"Canonical ids to decode, e.g. 43.3.16"`
}

func (c *IDDecodeCmd) Run(rt *session) error {
	decode := func(id string) (ref.Reference, error) {
		cid, ok := ref.ParseCanonicalID(id)
		if !ok {
			return ref.Reference{}, fmt.Errorf("invalid canonical id %q", id)
		}
		return rt.parser.Resolve(cid)
	}
	return rt.parseEach("id decode", c.IDs, decode, func(r ref.Reference) (any, string) {
		id := ref.CanonicalID(r)
		return encodedID{ID: id, Reference: r.DisplayText}, id + "\t" + r.DisplayText
	})
}

// SuggestCmd suggests books for a prefix.
type SuggestCmd struct {
	Prefix string `arg:"" help:"Start of a book name or abbreviation"`
	Limit  int    `help:"Maximum number of suggestions" default:"5"`
}

func (c *SuggestCmd) Run(rt *session) error {
	for _, b := range rt.parser.Suggestions(c.Prefix, c.Limit) {
		if err := rt.emit(b, b.Name); err != nil {
			return err
		}
	}
	return nil
}

// BooksCmd lists the loaded canon.
type BooksCmd struct {
	Testament string `help:"Only list one testament" enum:"all,ot,nt" default:"all"`
}

func (c *BooksCmd) Run(rt *session) error {
	for b := range rt.parser.Directory().All() {
		if c.Testament != "all" && !strings.EqualFold(string(b.Testament), c.Testament) {
			continue
		}
		text := fmt.Sprintf("%d\t%s\t%s\t%d\t%s", b.ID, b.Name, b.OSIS, b.ChapterCount, strings.Join(b.Abbreviations, ", "))
		if err := rt.emit(b, text); err != nil {
			return err
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// buildInfo is the version command's output.
type buildInfo struct {
	Version string      `json:"version"`
	SQLite  sqlite.Info `json:"sqlite"`
}

func (c *VersionCmd) Run(rt *session) error {
	info := buildInfo{Version: version, SQLite: sqlite.GetInfo()}
	return rt.emit(info, fmt.Sprintf("scriptref version %s\nsqlite driver: %s (%s, %s)",
		info.Version, info.SQLite.DriverName, info.SQLite.DriverType, info.SQLite.Package))
}

// loadDirectory builds the book directory from the built-in canon or a books
// database, then applies any alias overlay.
func loadDirectory(ctx context.Context, cli *CLI) (*canon.Directory, error) {
	dir := canon.Standard()
	source := "standard"

	if cli.BooksDB != "" {
		if err := validation.CheckFile(cli.BooksDB, validation.FileTypeSQLite); err != nil {
			return nil, fmt.Errorf("invalid books database: %w", err)
		}
		d, err := canon.LoadSQLite(ctx, cli.BooksDB)
		if err != nil {
			return nil, err
		}
		dir, source = d, cli.BooksDB
	}

	if cli.Aliases == "" {
		logging.DirectoryLoaded(source, dir.Len())
		return dir, nil
	}

	if err := validation.CheckFile(cli.Aliases, validation.FileTypeYAML); err != nil {
		return nil, fmt.Errorf("invalid alias file: %w", err)
	}
	dir, err := canon.LoadAliasesFile(dir, cli.Aliases)
	if err != nil {
		return nil, err
	}
	logging.DirectoryLoaded(source, dir.Len(), "aliases", cli.Aliases)
	return dir, nil
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("scriptref"),
		kong.Description("Parse, extract and convert Bible references"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, configPaths...),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "scriptref: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "scriptref: error: %v\n", err)
		return 2
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "scriptref: %v\n", err)
		return 2
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "scriptref: %v\n", err)
		return 2
	}
	logging.SetOutput(stderr, level, format)

	dir, err := loadDirectory(ctx, &cli)
	if err != nil {
		fmt.Fprintf(stderr, "scriptref: %v\n", err)
		return 1
	}

	rt := &session{
		ctx:    ctx,
		stdin:  stdin,
		stdout: stdout,
		parser: ref.New(dir, ref.WithLogger(logging.GetLogger())),
		json:   cli.JSON,
	}
	if err := kctx.Run(rt); err != nil {
		fmt.Fprintf(stderr, "scriptref: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
