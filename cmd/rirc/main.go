// rirc reads IR programs in text form, optimizes them, and prints or runs the result.
//
// Flag defaults may be set from the environment:
// RIRC_OPT, RIRC_TRACE, RIRC_MAX_INLINE, and RIRC_RUN.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ConradIrwin/rubyir/ir"
	"github.com/ConradIrwin/rubyir/ir/interp"
	"github.com/ConradIrwin/rubyir/irtext"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
)

var (
	opt       = flag.Bool("opt", env.Str("RIRC_OPT", "1") != "0", "whether to optimize")
	inline    = flag.Bool("inline", true, "whether to inline calls and yields")
	trace     = flag.Bool("trace", env.Bool("RIRC_TRACE"), "print inlining decisions and interpreter steps to stderr")
	maxInline = flag.Int("max-inline", env.Int("RIRC_MAX_INLINE", 32), "maximum instructions in an inlined method")
	run       = flag.String("run", env.Str("RIRC_RUN"), "method to run after optimizing instead of printing")
)

func main() {
	flag.Parse()
	args := flag.Args()
	switch {
	case len(args) > 1:
		usage("only one IR file is supported")
	case *maxInline < 0:
		usage("-max-inline must not be negative")
	}
	p, err := load(args)
	if err != nil {
		die("%s", err)
	}
	if *opt {
		opts := []ir.Option{ir.MaxInlineSize(*maxInline)}
		if !*inline {
			opts = append(opts, ir.NoInline)
		}
		if *trace {
			opts = append(opts, ir.TraceInlining, ir.TraceTo(os.Stderr))
		}
		ir.Optimize(p, opts...)
	}
	if *run == "" {
		fmt.Println(p)
		return
	}
	in := interp.New(p)
	if *trace {
		in.Trace = os.Stderr
	}
	res, err := in.Run(*run)
	if err != nil {
		die("%s", errors.Wrapf(err, "running %s", *run))
	}
	fmt.Printf("=> %s\n", res)
}

func load(args []string) (*ir.Program, error) {
	if len(args) == 0 {
		return irtext.Parse("<stdin>", os.Stdin)
	}
	return irtext.ParseFile(args[0])
}

func usage(msg string) {
	fmt.Printf("%s\n", msg)
	fmt.Printf("rirc [flags] [file]\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func die(f string, vs ...interface{}) {
	fmt.Printf(f+"\n", vs...)
	os.Exit(1)
}
