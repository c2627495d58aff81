// Command bytepatch builds and applies byte-level patches, and benchmarks
// this package's diff engine against github.com/sergi/go-diff.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dacharyc/bytepatch"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "diff":
		err = runDiff(os.Args[2:])
	case "apply":
		err = runApply(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "bytepatch:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bytepatch diff <left-file> <right-file>")
	fmt.Fprintln(os.Stderr, "       bytepatch apply <patch-file> <target-file>")
	fmt.Fprintln(os.Stderr, "       bytepatch bench <left-file> <right-file>")
}

// runDiff builds a Diff, prints its stats, and prints the unified patch
// text for the resulting Patch. Per §9(c) a missing right-file is treated
// as "diff against empty" rather than aborting.
func runDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	margin := fs.Int("margin", 4, "patch context margin, in bytes")
	deadline := fs.Duration("deadline", time.Second, "diff build wall-clock budget (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("diff requires <left-file> <right-file>")
	}

	left, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	right, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bytepatch: %v (treating right side as empty)\n", err)
	}

	deadlineOpt := bytepatch.WithDeadline(*deadline)
	if *deadline == 0 {
		deadlineOpt = bytepatch.WithUnboundedDeadline()
	}
	d := bytepatch.Build(left, right, deadlineOpt)
	stats := d.Stats()
	fmt.Fprintf(os.Stderr, "fragments=%d equal=%d inserted=%d deleted=%d\n",
		stats.Fragments, stats.Equal, stats.Inserted, stats.Deleted)

	p, err := bytepatch.NewPatchFromTexts(left, d, bytepatch.WithPatchMargin(*margin))
	if err != nil {
		return err
	}
	fmt.Print(p.String())
	return nil
}

// runApply parses a patch and applies it, writing the patched bytes to
// stdout and the applied/rejected bitset to stderr; exits nonzero if any
// hunk failed to apply.
func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	padding := fs.Int("padding", 4, "sentinel padding length bitap anchors against at buffer edges")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("apply requires <patch-file> <target-file>")
	}

	patchText, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	target, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}

	p, err := bytepatch.ParsePatch(string(patchText))
	if err != nil {
		return err
	}
	patched, applied, err := p.Apply(target, bytepatch.WithPaddingLength(*padding))
	if err != nil {
		return err
	}
	os.Stdout.Write(patched)

	allApplied := true
	for i, ok := range applied {
		fmt.Fprintf(os.Stderr, "hunk %d applied=%v\n", i, ok)
		if !ok {
			allApplied = false
		}
	}
	if !allApplied {
		os.Exit(1)
	}
	return nil
}

// runBench times this package's Build against sergi/go-diff/diffmatchpatch's
// DiffMain on the same byte inputs and reports fragment counts and
// wall-clock for both.
func runBench(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("bench requires <left-file> <right-file>")
	}
	left, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	right, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	start := time.Now()
	d := bytepatch.Build(left, right)
	bytepatchTime := time.Since(start)
	bytepatchStats := d.Stats()

	dmp := godiff.New()
	start = time.Now()
	goDiffs := dmp.DiffMain(string(left), string(right), true)
	goDiffTime := time.Since(start)

	fmt.Printf("bytepatch: %v, %d fragments (equal=%d inserted=%d deleted=%d)\n",
		bytepatchTime, bytepatchStats.Fragments, bytepatchStats.Equal,
		bytepatchStats.Inserted, bytepatchStats.Deleted)
	fmt.Printf("go-diff:   %v, %d fragments\n", goDiffTime, len(goDiffs))
	return nil
}
