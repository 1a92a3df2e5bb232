package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/funbuf/internal/cache"
	"github.com/funvibe/funbuf/internal/config"
	"github.com/funvibe/funbuf/internal/inspect"
	"github.com/funvibe/funbuf/internal/pipeline"
)

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	args := os.Args[1:]
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage()
		return
	}

	switch args[0] {
	case "check":
		os.Exit(runCheck(args[1:]))
	case "show":
		os.Exit(runShow(args[1:]))
	case "version":
		fmt.Println("funbuf", Version)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
		os.Exit(2)
	}
}

// Version can be set at build time using: -ldflags "-X main.Version=v1.2.3"
var Version = "dev"

func usage() {
	fmt.Print(`funbuf - buffer sequence classification for Go types

Usage:
  funbuf check [-config funbuf.yaml] [-dir path] [-cache] [patterns ...]
      Verify the capability checks in the manifest. Exits 1 when a
      check fails or a package cannot be loaded.

  funbuf show [-dir path] [patterns ...]
      Classify every exported named type in the matched packages and
      print the verdicts.

  funbuf version
      Print the version.

A manifest (funbuf.yaml) lists the packages to inspect and the
capability every listed type must have:

  packages:
    - ./...
  checks:
    - type: example.com/chain.Gather
      want: mutable
`)
}

// checkOptions holds the flags shared by check and show, parsed the
// simple way: anything starting with a dash is a flag, the rest are
// package patterns.
type checkOptions struct {
	configPath string
	dir        string
	useCache   bool
	patterns   []string
}

func parseOptions(args []string) (checkOptions, error) {
	var opts checkOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-config" || arg == "--config":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a path", arg)
			}
			opts.configPath = args[i]
		case arg == "-dir" || arg == "--dir":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a path", arg)
			}
			opts.dir = args[i]
		case arg == "-cache" || arg == "--cache":
			opts.useCache = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag: %s", arg)
		default:
			opts.patterns = append(opts.patterns, arg)
		}
	}
	return opts, nil
}

func runCheck(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
	if len(opts.patterns) > 0 {
		cfg.Packages = opts.patterns
	}

	ctx := &pipeline.Context{Dir: opts.dir, Config: cfg}
	if opts.useCache {
		c, err := openCache(opts.dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		} else {
			ctx.Cache = c
			defer c.Close()
		}
	}

	ctx = pipeline.New(pipeline.InspectStage{}, pipeline.VerifyStage{}).Run(ctx)

	for _, err := range ctx.Errors {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("ERROR"), err)
	}
	for _, f := range ctx.Failures {
		fmt.Printf("%s %s\n", red("FAIL"), f)
	}

	if ctx.Failed() {
		return 1
	}
	fmt.Printf("%s %d checks, %d packages\n", green("OK"), len(cfg.Checks), countPackages(ctx))
	return 0
}

func loadConfig(opts checkOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		dir := opts.dir
		if dir == "" {
			dir = "."
		}
		found, err := config.Find(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			// No manifest: inspect everything, check nothing.
			return &config.Config{Packages: []string{"./..."}}, nil
		}
		path = found
	}
	return config.Load(path)
}

func openCache(dir string) (*cache.Cache, error) {
	if dir == "" {
		dir = "."
	}
	cacheDir := filepath.Join(dir, ".funbuf")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return cache.Open(filepath.Join(cacheDir, "cache.db"))
}

func countPackages(ctx *pipeline.Context) int {
	if ctx.Report == nil {
		return 0
	}
	return len(ctx.Report.Packages)
}

func runShow(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	ins := &inspect.Inspector{Dir: opts.dir}
	report, err := ins.Inspect(opts.patterns...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	for _, pr := range report.Packages {
		fmt.Printf("%s\n", pr.Path)
		for _, v := range pr.Verdicts {
			line := fmt.Sprintf("  %-30s %s", v.Name, colorCapability(v))
			if v.Iterator != "" {
				line += "  iter " + v.Iterator
			}
			fmt.Println(line)
		}
	}
	return 0
}

func colorCapability(v inspect.Verdict) string {
	label := v.Capability.String()
	if v.View {
		label = "view (" + label + ")"
	}
	switch v.Capability {
	case inspect.CapabilityMutable:
		return green(label)
	case inspect.CapabilityConst:
		return yellow(label)
	default:
		return label
	}
}
