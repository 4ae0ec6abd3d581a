package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xyproto/rebcore"
)

const versionString = "rebscan 1.0.0"

func main() {
	var tokensFlag = flag.Bool("tokens", false, "dump the raw token stream instead of rendering")
	var relaxFlag = flag.Bool("relax", false, "scan in relax mode (tolerate unmatched closing brackets)")
	var verbose = flag.Bool("v", false, "verbose mode")
	var version = flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(versionString)
		os.Exit(0)
	}

	var src []byte
	var name string
	var err error

	args := flag.Args()
	if len(args) == 0 {
		name = "stdin"
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("rebscan: reading stdin: %v", err)
		}
	} else {
		name = args[0]
		src, err = os.ReadFile(name)
		if err != nil {
			log.Fatalf("rebscan: reading %s: %v", name, err)
		}
	}

	it := rebcore.NewInterpreter()

	if *verbose {
		fmt.Fprintf(os.Stderr, "rebscan: %d bytes from %s, ballast=%d pool-segment=%d max-depth=%d\n",
			len(src), name, it.Config.GCBallastBytes, it.Config.PoolSegmentNodes, it.Config.ScanMaxDepth)
	}

	if *tokensFlag {
		dumpTokens(src, name, it.Config)
		return
	}

	var mode rebcore.ScanMode
	if *relaxFlag {
		mode = rebcore.ScanRelax
	}

	block, err := it.Scan(src, name, mode)
	if err != nil {
		log.Fatalf("rebscan: %v", err)
	}

	fmt.Println(rebcore.RenderBlock(block))

	if it.MaybeCollect() && *verbose {
		fmt.Fprintf(os.Stderr, "rebscan: ran a collection cycle (cycle #%d)\n", it.GC.Cycles())
	}
}

func dumpTokens(src []byte, name string, cfg rebcore.Config) {
	s := rebcore.NewScanner(src, name, rebcore.ScanNext, cfg)
	for {
		tok, err := s.Next()
		if err != nil {
			log.Fatalf("rebscan: %v", err)
		}
		if tok.Type == rebcore.TokenEnd {
			return
		}
		fmt.Printf("%-12s %q\n", tok.Type, tok.Text)
	}
}
