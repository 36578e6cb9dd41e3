package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/fcapolini/goodscript-sub002/internal/astjson"
	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/pipeline"
)

var (
	// Version info - set by ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		mode        = flag.String("mode", "", "Memory-management backend: gc or ownership")
		outDir      = flag.String("out", "", "Output directory for generated .hpp/.cpp files")
		configPath  = flag.String("config", "goodscript.yaml", "Path to a goodscript.yaml to merge under flags")
		verbose     = flag.Bool("verbose", false, "Print per-phase timings")
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch flag.Arg(0) {
	case "compile":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing input file argument\n", red("Error"))
			fmt.Println("Usage: goodscriptc [--mode=gc|ownership] [--out=<dir>] compile <file.json>")
			os.Exit(1)
		}
		runCompile(flag.Arg(1), *mode, *outDir, *configPath, *verbose)
	case "version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("goodscriptc %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("Commit: %s\n", Commit)
	}
	if BuildTime != "unknown" {
		fmt.Printf("Built:  %s\n", BuildTime)
	}
	fmt.Println("\nGoodScript-to-C++ source-to-source compiler")
}

func printHelp() {
	fmt.Println(bold("goodscriptc - GoodScript-to-C++ compiler"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  goodscriptc [flags] compile <file.json>")
	fmt.Println("  goodscriptc version")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --mode string    Memory-management backend: gc or ownership (default gc)")
	fmt.Println("  --out string     Output directory for generated .hpp/.cpp (default .)")
	fmt.Println("  --config string  Path to a goodscript.yaml to merge under flags")
	fmt.Println("  --verbose        Print per-phase timings")
	fmt.Println("  --version        Print version information")
	fmt.Println("  --help           Show this help message")
	fmt.Println()
	fmt.Printf("Example:\n  %s\n", cyan("goodscriptc --mode=ownership --out=build/ compile widget.json"))
}

func runCompile(inputPath, mode, outDir, configPath string, verbose bool) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	if err := cfg.Merge(config.Flags{Mode: mode, OutDir: outDir, Verbose: verbose}); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file %q: %v\n", red("Error"), inputPath, err)
		os.Exit(1)
	}

	fmt.Printf("%s Decoding typed AST from %s\n", cyan("→"), inputPath)
	prog, err := astjson.DecodeProgram(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	fmt.Printf("%s Compiling in %s mode\n", cyan("→"), cfg.Mode)
	result := pipeline.Compile(prog, cfg.Mode)

	if result.HasErrors() {
		printDiagnostics(result.Diagnostics.SortedByCode())
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "%s: creating output directory %q: %v\n", red("Error"), cfg.OutDir, err)
		os.Exit(1)
	}
	for _, f := range result.Files {
		outPath := filepath.Join(cfg.OutDir, f.Path)
		if err := os.WriteFile(outPath, []byte(f.Source), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: writing %q: %v\n", red("Error"), outPath, err)
			os.Exit(1)
		}
		fmt.Printf("  %s %s\n", green("✓"), outPath)
	}

	if cfg.Verbose {
		for phase, ms := range result.PhaseTimings {
			fmt.Printf("  %s %s: %dms\n", yellow("⏱"), phase, ms)
		}
	}

	fmt.Printf("\n%s Wrote %d file(s) to %s\n", green("✓"), len(result.Files), cfg.OutDir)
}

func printDiagnostics(reports []*diagnostics.Report) {
	fmt.Fprintf(os.Stderr, "%s %d diagnostic(s):\n", red("Error"), len(reports))
	for _, r := range reports {
		fmt.Fprintf(os.Stderr, "  %s [%s/%s] %s\n", red("•"), r.Phase, r.Code, r.Message)
	}
}

