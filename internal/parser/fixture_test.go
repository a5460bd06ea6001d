package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/andressilva/minic/internal/lexer"
	"github.com/andressilva/minic/internal/parser"
	"github.com/andressilva/minic/internal/tree"
)

// TestMain ensures go-snaps prunes any snapshot entries this run no
// longer produced, the way the teacher's own fixture-driven suite does.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// fixturePrograms lists the known-good source files under
// testdata/programs, one per grammar shape worth snapshotting: a minimal
// main, a function call, and the full control-flow surface (if/else,
// while, do-while). Grounded on the teacher's internal/interp/
// fixture_test.go, which drives a similar table of named .mc-equivalent
// fixtures through go-snaps instead of asserting each expected tree by
// hand.
var fixturePrograms = []string{
	"main_only.mc",
	"function_call.mc",
	"control_flow.mc",
}

func TestFixtures_ParseTreeSnapshots(t *testing.T) {
	for _, name := range fixturePrograms {
		name := name
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("..", "..", "testdata", "programs", name)
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}

			tokens, err := lexer.Tokenize(string(src))
			if err != nil {
				t.Fatalf("unexpected lexical error: %v", err)
			}
			res := parser.New(tokens).Parse()
			if len(res.Errors) != 0 {
				t.Fatalf("unexpected parse errors: %v", res.Errors)
			}

			snaps.MatchSnapshot(t, tree.Render(res.Tree))
		})
	}
}
