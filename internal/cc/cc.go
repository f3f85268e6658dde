package cc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvCompiler names the environment variable that overrides compiler detection
const EnvCompiler = "TINYLANG_CC"

type Options struct {
	// CSource is the path to the generated C file.
	CSource string

	// Out is the desired executable path. If empty it is derived from
	// CSource by dropping the extension (and adding .exe on Windows).
	Out string

	// CCBin is an optional explicit compiler ("clang", "gcc", "cl").
	// If empty, Find picks one.
	CCBin string

	// ExtraArgs are appended to the compiler command line.
	ExtraArgs []string

	// DryRun validates paths and resolves the compiler without running it.
	DryRun bool
}

// Compile compiles a generated C file into an executable and returns the
// executable's absolute path.
func Compile(opts Options) (string, error) {
	if opts.CSource == "" {
		return "", errors.New("cc: CSource must be set")
	}
	srcAbs, err := filepath.Abs(opts.CSource)
	if err != nil {
		return "", fmt.Errorf("cc: resolve CSource: %w", err)
	}
	if _, err := os.Stat(srcAbs); err != nil {
		return "", fmt.Errorf("cc: source does not exist: %s", srcAbs)
	}

	out := opts.Out
	if out == "" {
		out = dropExt(srcAbs)
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(out), ".exe") {
		out = out + ".exe"
	}
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return "", fmt.Errorf("cc: resolve Out: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outAbs), 0o755); err != nil {
		return "", fmt.Errorf("cc: create out dir: %w", err)
	}

	compiler := opts.CCBin
	if compiler == "" {
		compiler, err = Find()
		if err != nil {
			return "", err
		}
	}

	args := constructArgs(compiler, srcAbs, outAbs, opts.ExtraArgs)
	logrus.WithFields(logrus.Fields{
		"cc":   compiler,
		"args": strings.Join(args, " "),
	}).Debug("invoking c compiler")
	if opts.DryRun {
		return outAbs, nil
	}

	cmd := exec.Command(compiler, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("cc: compilation failed: %w\n%s", err, output)
	}
	return outAbs, nil
}

// Find picks a C compiler: $TINYLANG_CC if it is on PATH, then clang, gcc
// and cc (clang, cl, gcc on Windows).
func Find() (string, error) {
	if v := os.Getenv(EnvCompiler); v != "" {
		if hasCmd(v) {
			return v, nil
		}
	}

	candidates := []string{"clang", "gcc", "cc"}
	if runtime.GOOS == "windows" {
		candidates = []string{"clang", "cl", "gcc"}
	}
	for _, c := range candidates {
		if hasCmd(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("cc: no compiler found (tried %s)", strings.Join(candidates, ", "))
}

func hasCmd(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func dropExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func constructArgs(compiler, srcAbs, outAbs string, extra []string) []string {
	if strings.EqualFold(compiler, "cl") {
		// cl /nologo src /Fe:out.exe
		args := []string{"/nologo", srcAbs, "/Fe:" + outAbs}
		return append(args, extra...)
	}

	// gcc/clang: cc src -o out
	args := []string{srcAbs, "-o", outAbs}
	return append(args, extra...)
}
