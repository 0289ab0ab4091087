// Command normalize decomposes stdin (or a list of files) to NFD or NFKD
// and writes the result to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"

	"github.com/gpawru/decompose/norm"
)

func main() {
	kd := flag.Bool("k", false, "use compatibility decomposition (NFKD) instead of canonical (NFD)")
	check := flag.Bool("c", false, "only check whether input is already normalized; print the verdict and set exit status")
	flag.Parse()

	form := norm.NFD
	if *kd {
		form = norm.NFKD
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	status := 0
	for _, name := range args {
		if err := process(form, name, *check, &status); err != nil {
			fmt.Fprintf(os.Stderr, "normalize: %s: %v\n", name, err)
			status = 1
		}
	}
	os.Exit(status)
}

func process(form norm.Form, name string, check bool, status *int) error {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if check {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		normalized := form.IsNormalized(string(data))
		fmt.Printf("%s: %v\n", name, normalized)
		if !normalized {
			*status = 1
		}
		return nil
	}

	tr := transform.NewReader(r, form.Transformer())
	_, err := io.Copy(os.Stdout, tr)
	return err
}
