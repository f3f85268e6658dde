package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"tinylang/internal"
	"tinylang/internal/cc"
)

const envLogLevel = "TINYLANG_LOG_LEVEL"

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 2
	}
	switch args[0] {
	case "help", "-h", "--help":
		usage()
		return 0
	case "run":
		return cmdRun(args[1:])
	case "emit":
		return cmdEmit(args[1:])
	case "build":
		return cmdBuild(args[1:])
	case "tokens":
		return cmdTokens(args[1:])
	case "ast":
		return cmdAst(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "tinylang: interpreter and C emitter for a tiny imperative language")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  tinylang <command> [flags] <file>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run <file>                          Interpret a program")
	fmt.Fprintln(os.Stderr, "  emit [-o out.c] <file>              Generate C (stdout without -o)")
	fmt.Fprintln(os.Stderr, "  build [-o exe] [-cc clang] [-keep] <file>")
	fmt.Fprintln(os.Stderr, "                                      Generate C and compile it")
	fmt.Fprintln(os.Stderr, "  tokens <file>                       Print the token stream")
	fmt.Fprintln(os.Stderr, "  ast <file>                          Print the syntax tree")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Common flags: -v (debug logging), -no-color")
	fmt.Fprintln(os.Stderr, "Environment: "+envLogLevel+" (logrus level), "+cc.EnvCompiler+" (C compiler)")
}

type commonFlags struct {
	verbose bool
	noColor bool
}

func newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	common := &commonFlags{}
	fs.BoolVar(&common.verbose, "v", false, "log every pipeline stage")
	fs.BoolVar(&common.noColor, "no-color", false, "disable coloured diagnostics")
	return fs, common
}

// parse parses the command line of one command and returns the source file
// argument. ok is false on usage errors.
func (c *commonFlags) parse(fs *flag.FlagSet, args []string) (file string, ok bool) {
	if err := fs.Parse(args); err != nil {
		return "", false
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: tinylang %s [flags] <file>\n", fs.Name())
		fs.PrintDefaults()
		return "", false
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Warn("ignoring " + envLogLevel)
		} else {
			logrus.SetLevel(level)
		}
	}
	if c.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.noColor {
		color.Disable()
	}
	return fs.Arg(0), true
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", absPath, err)
	}
	return string(b), nil
}

// report prints err on stderr and returns the exit code for it
func report(err error) int {
	var fault *internal.Error
	if errors.As(err, &fault) {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.Red("Error"), color.Bold(fault.Kind.String()+" fault"))
		fmt.Fprintf(os.Stderr, "\t%s\n", fault.Error())
		return 1
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", color.Red("Error"), err)
	return 1
}

func cmdRun(args []string) int {
	fs, common := newFlagSet("run")
	file, ok := common.parse(fs, args)
	if !ok {
		return 2
	}
	source, err := readSource(file)
	if err != nil {
		return report(err)
	}
	if err := internal.RunSourceWithPrinter(source, stdPrinter{}); err != nil {
		return report(err)
	}
	return 0
}

func cmdEmit(args []string) int {
	fs, common := newFlagSet("emit")
	out := fs.String("o", "", "write the generated C to this file")
	file, ok := common.parse(fs, args)
	if !ok {
		return 2
	}
	source, err := readSource(file)
	if err != nil {
		return report(err)
	}
	generated, err := internal.EmitSource(source)
	if err != nil {
		return report(err)
	}
	if *out == "" {
		fmt.Print(generated)
		return 0
	}
	if err := ioutil.WriteFile(*out, []byte(generated), 0o644); err != nil {
		return report(fmt.Errorf("write %s: %w", *out, err))
	}
	logrus.Infof("wrote %s (%s)", *out, bytes.Format(int64(len(generated))))
	return 0
}

func cmdBuild(args []string) int {
	fs, common := newFlagSet("build")
	out := fs.String("o", "", "executable path (default: source path without extension)")
	compiler := fs.String("cc", "", "C compiler to use (default: $"+cc.EnvCompiler+", clang, gcc, cc)")
	keep := fs.Bool("keep", false, "keep the generated .c file next to the source")
	file, ok := common.parse(fs, args)
	if !ok {
		return 2
	}
	source, err := readSource(file)
	if err != nil {
		return report(err)
	}
	generated, err := internal.EmitSource(source)
	if err != nil {
		return report(err)
	}

	cFile := strings.TrimSuffix(file, filepath.Ext(file)) + ".c"
	if !*keep {
		dir, err := ioutil.TempDir("", "tinylang")
		if err != nil {
			return report(err)
		}
		defer os.RemoveAll(dir)
		cFile = filepath.Join(dir, filepath.Base(cFile))
	}
	if err := ioutil.WriteFile(cFile, []byte(generated), 0o644); err != nil {
		return report(fmt.Errorf("write %s: %w", cFile, err))
	}
	logrus.WithField("file", cFile).Debugf("wrote c source (%s)", bytes.Format(int64(len(generated))))

	exe := *out
	if exe == "" {
		exe = strings.TrimSuffix(file, filepath.Ext(file))
	}
	built, err := cc.Compile(cc.Options{
		CSource: cFile,
		Out:     exe,
		CCBin:   *compiler,
	})
	if err != nil {
		return report(err)
	}
	logrus.Infof("built %s", built)
	return 0
}

func cmdTokens(args []string) int {
	fs, common := newFlagSet("tokens")
	file, ok := common.parse(fs, args)
	if !ok {
		return 2
	}
	source, err := readSource(file)
	if err != nil {
		return report(err)
	}
	tokens, err := internal.Lex(source)
	if err != nil {
		return report(err)
	}
	for _, tk := range tokens {
		fmt.Printf("%4d  %-18s %s\n", tk.Line, tk.Kind, strconv.Quote(tk.Lexeme))
	}
	return 0
}

func cmdAst(args []string) int {
	fs, common := newFlagSet("ast")
	file, ok := common.parse(fs, args)
	if !ok {
		return 2
	}
	source, err := readSource(file)
	if err != nil {
		return report(err)
	}
	tokens, err := internal.Lex(source)
	if err != nil {
		return report(err)
	}
	stmts, err := internal.Parse(tokens)
	if err != nil {
		return report(err)
	}
	fmt.Print(internal.PrintTree(stmts))
	return 0
}
