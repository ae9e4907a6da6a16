// Prints counts and tuples from the cartesian product of sets given on the
// command-line.
//
// Example run:
// $ go run ./cmd/cartesian get 7 foo,bar,baz,bah wibble,wobble,weeble nip,nop
// bar wibble nop
package main

import (
	"fmt"
	"os"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"

	"github.com/anacrolix/cartesian"
)

type SetArgs struct {
	LessLazy bool     `help:"cache strides and count at construction"`
	Sets     []string `arg:"positional,required" help:"comma-separated set elements"`
}

func (me SetArgs) indexer() *cartesian.Indexer[string] {
	sets := make([][]string, 0, len(me.Sets))
	for _, s := range me.Sets {
		sets = append(sets, strings.Split(s, ","))
	}
	return cartesian.New(cartesian.Options{LessLazy: me.LessLazy}, sets...)
}

var args struct {
	Get *struct {
		Pos  int64 `arg:"positional,required" help:"linear position to decode"`
		Spew bool  `help:"dump the tuple with go-spew"`
		SetArgs
	} `arg:"subcommand:get"`
	Count *struct {
		SetArgs
	} `arg:"subcommand:count"`
	LastIdx *struct {
		SetArgs
	} `arg:"subcommand:last-idx"`
}

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		log.Printf("error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	p := arg.MustParse(&args)
	switch {
	case args.Get != nil:
		ix := args.Get.indexer()
		tuple := ix.Get(args.Get.Pos)
		if !tuple.Ok {
			return fmt.Errorf(
				"no tuple at position %v: product has %v tuples",
				args.Get.Pos, humanize.Comma(ix.Count()))
		}
		if args.Get.Spew {
			spew.Dump(tuple.Value)
		} else {
			fmt.Println(strings.Join(tuple.Value, " "))
		}
	case args.Count != nil:
		fmt.Println(humanize.Comma(args.Count.indexer().Count()))
	case args.LastIdx != nil:
		fmt.Println(humanize.Comma(args.LastIdx.indexer().LastIdx()))
	default:
		p.Fail("expected a subcommand")
	}
	return nil
}
