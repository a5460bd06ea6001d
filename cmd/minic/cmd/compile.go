package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andressilva/minic/internal/driver"
)

var (
	compileExpr  string
	compileBatch string
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Run the full front-end and report a pass/fail verdict",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&compileExpr, "eval", "e", "", "compile inline source instead of a file")
	compileCmd.Flags().StringVar(&compileBatch, "batch", "", "compile every .mc file in this directory, with recovery, and print a pass/fail summary")
}

func runCompile(c *cobra.Command, args []string) error {
	if compileBatch != "" {
		return runBatch(compileBatch)
	}

	var file string
	if len(args) == 1 {
		file = args[0]
	}
	src, err := readSource(file, compileExpr)
	if err != nil {
		return err
	}

	res := driver.Compile(src, driver.ModeCompile, driver.Options{})
	if !res.Ok() {
		for _, e := range res.Errors {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("compilación falló")
	}
	color.New(color.FgGreen, color.Bold).Println("compilación exitosa")
	return nil
}

// runBatch implements the batched test-runner mode supplemented from
// original_source/remain.py's run_tests(): every .mc file in dir is
// compiled with recovery enabled, so one file's errors never stop the
// rest of the batch, and a pass/fail summary is printed at the end.
func runBatch(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	passed, failed := 0, 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".mc" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("%s: %v\n", e.Name(), err)
			failed++
			continue
		}

		res := driver.Compile(string(data), driver.ModeCompile, driver.Options{Recover: true})
		if res.Ok() {
			color.New(color.FgGreen).Printf("PASS  %s\n", e.Name())
			passed++
			continue
		}
		color.New(color.FgRed).Printf("FAIL  %s\n", e.Name())
		for _, diagErr := range res.Errors {
			fmt.Printf("      %s\n", diagErr.Error())
		}
		failed++
	}

	fmt.Printf("\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d archivo(s) con errores", failed)
	}
	return nil
}
