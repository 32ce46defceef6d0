// Command fluxc is a thin CLI driver: source file(s) in, IR text out.
// Everything else — lexing, parsing, analysis,
// optimization, codegen — lives in the flux package; this file only wires
// flags to it and, for multiple files, fans out across internal/batch.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	flux "github.com/flux-lang/fluxc"
	"github.com/flux-lang/fluxc/internal/batch"
)

func main() {
	var debug bool

	cmd := &cobra.Command{
		Use:   "fluxc <path> [path...]",
		Short: "Compile Flux source files to textual IR",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				compiler := flux.New()
				compiler.Debug = debug

				ir, err := compiler.CompileFile(args[0])
				if err != nil {
					return err
				}
				fmt.Println(ir)
				return nil
			}

			results := batch.CompileAll(args, func(path string) (string, error) {
				compiler := flux.New()
				compiler.Debug = debug
				return compiler.CompileFile(path)
			})

			var failed bool
			for _, r := range results {
				fmt.Printf("=== %s ===\n", r.Path)
				if r.Err != nil {
					fmt.Fprintln(os.Stderr, r.Err)
					failed = true
					continue
				}
				fmt.Println(r.IR)
			}
			if failed {
				return fmt.Errorf("one or more files failed to compile")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "print tokens, AST, and IR to stdout")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
