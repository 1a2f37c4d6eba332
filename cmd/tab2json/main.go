// Command tab2json converts a tab-separated pronoun table into the JSON
// dataset read by the server.
//
//	tab2json -in pronouns.tab -out data/pronouns.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/within/pronouns"
)

func main() {
	in := flag.String("in", "pronouns.tab", "tab-separated pronoun table")
	out := flag.String("out", "-", "output JSON file, - for stdout")
	singular := flag.Bool("singular", pronouns.DefaultSingular, "number for rows without a number column")
	flag.Parse()

	logger.New("INFO")
	log := logger.Sugar.WithServiceName("tab2json")

	n, err := convert(*in, *out, *singular)
	if err != nil {
		log.Errorf("%v", err)
		logger.OnExit()
		os.Exit(1)
	}
	log.Infof("wrote %d pronoun sets to %s", n, *out)
	logger.OnExit()
}

// convert reads the table at in and writes it as indented JSON to out.
func convert(in, out string, singular bool) (int, error) {
	f, err := os.Open(in)
	if err != nil {
		return 0, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	sets, err := pronouns.ReadTable(f, filepath.Base(in), singular)
	if err != nil {
		return 0, err
	}
	// Build rejects an empty table the same way the server would.
	trie, err := pronouns.Build(sets)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", in, err)
	}

	if out == "-" {
		err = writeJSON(os.Stdout, trie.Gather())
	} else {
		var of *os.File
		if of, err = os.Create(out); err != nil {
			return 0, fmt.Errorf("create output: %w", err)
		}
		err = writeAndClose(of, trie.Gather())
	}
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}
	return trie.Len(), nil
}

// writeAndClose writes sets to wc and closes it, reporting the first error.
// A failed close can mean the data never reached the disk.
func writeAndClose(wc io.WriteCloser, sets []pronouns.PronounSet) error {
	if err := writeJSON(wc, sets); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func writeJSON(w io.Writer, sets []pronouns.PronounSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sets)
}
