// Command schema writes the JSON schema of the feedrank YAML configuration,
// used by editors to validate and complete config files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedrank/pkg/config"
)

type options struct {
	Args struct {
		Output string `positional-arg-name:"output" description:"schema file, - for stdout"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	out := opts.Args.Output
	if out == "" {
		out = "schema.json"
	}
	if err := writeSchema(out, os.Stdout); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// writeSchema writes the schema to path, or to stdout if path is "-"
func writeSchema(path string, stdout io.Writer) error {
	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	if path == "-" {
		_, err = stdout.Write(append(data, '\n'))
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}
	fmt.Fprintf(stdout, "schema written to %s\n", path)
	return nil
}
