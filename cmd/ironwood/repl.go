package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/ironwood-db/ironwood/internal/btree"
)

// repl drives one tree through commands read line by line.
type repl struct {
	tree *btree.Tree[int]
	out  io.Writer
}

func replAction(c *cli.Context) error {
	r, err := newRepl(orderOf(c), os.Stdout)
	if err != nil {
		return err
	}
	r.run(os.Stdin)
	return nil
}

func newRepl(order int, out io.Writer) (*repl, error) {
	tree, err := btree.New[int](order)
	if err != nil {
		return nil, err
	}
	return &repl{tree: tree, out: out}, nil
}

func (r *repl) run(in io.Reader) {
	fmt.Fprintf(r.out, "ironwood %s — order-%d B-tree. Type 'help' for commands.\n", version, r.tree.Order())
	fmt.Fprint(r.out, "> ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := r.eval(scanner.Text()); quit {
			return
		}
		fmt.Fprint(r.out, "> ")
	}
}

// eval executes one command line and reports whether the session should end.
func (r *repl) eval(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "insert", "i":
		r.insert(args)
	case "remove", "rm":
		r.remove(args)
	case "search", "s":
		r.search(args)
	case "range":
		r.rangeSearch(args)
	case "bulk":
		r.bulk(args)
	case "keys":
		fmt.Fprintln(r.out, r.tree.Join(" "))
	case "min":
		r.extreme(r.tree.MinKey)
	case "max":
		r.extreme(r.tree.MaxKey)
	case "len":
		fmt.Fprintln(r.out, r.tree.Len())
	case "height":
		fmt.Fprintln(r.out, r.tree.Height())
	case "check":
		if err := r.tree.Check(); err != nil {
			fmt.Fprintln(r.out, color.RedString("FAIL: %v", err))
		} else {
			fmt.Fprintln(r.out, color.GreenString("ok"))
		}
	case "clear":
		r.tree.Clear()
		fmt.Fprintln(r.out, color.YellowString("cleared"))
	case "help":
		r.help()
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintln(r.out, color.RedString("unknown command %q, try 'help'", cmd))
	}
	return false
}

func (r *repl) insert(args []string) {
	keys, err := parseKeys(args, 1)
	if err != nil {
		fmt.Fprintln(r.out, color.RedString("usage: insert <key>..."))
		return
	}
	for _, key := range keys {
		if r.tree.Insert(key) {
			fmt.Fprintln(r.out, color.GreenString("inserted %d", key))
		} else {
			fmt.Fprintln(r.out, color.YellowString("%d already present", key))
		}
	}
}

func (r *repl) remove(args []string) {
	keys, err := parseKeys(args, 1)
	if err != nil {
		fmt.Fprintln(r.out, color.RedString("usage: remove <key>..."))
		return
	}
	for _, key := range keys {
		if r.tree.Remove(key) {
			fmt.Fprintln(r.out, color.GreenString("removed %d", key))
		} else {
			fmt.Fprintln(r.out, color.YellowString("%d not present", key))
		}
	}
}

func (r *repl) search(args []string) {
	keys, err := parseKeys(args, 1)
	if err != nil || len(keys) != 1 {
		fmt.Fprintln(r.out, color.RedString("usage: search <key>"))
		return
	}
	if r.tree.Search(keys[0]) {
		fmt.Fprintln(r.out, color.GreenString("found"))
	} else {
		fmt.Fprintln(r.out, color.YellowString("not found"))
	}
}

func (r *repl) rangeSearch(args []string) {
	keys, err := parseKeys(args, 2)
	if err != nil || len(keys) != 2 {
		fmt.Fprintln(r.out, color.RedString("usage: range <begin> <end>"))
		return
	}
	hits := r.tree.RangeSearch(keys[0], keys[1])
	if len(hits) == 0 {
		fmt.Fprintln(r.out, color.YellowString("no keys in range"))
		return
	}
	parts := make([]string, len(hits))
	for i, key := range hits {
		parts[i] = strconv.Itoa(key)
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// bulk replaces the session tree with one bulk-loaded from the given keys,
// which must be strictly ascending.
func (r *repl) bulk(args []string) {
	keys, err := parseKeys(args, 1)
	if err != nil {
		fmt.Fprintln(r.out, color.RedString("usage: bulk <key> <key> ... (strictly ascending)"))
		return
	}
	for i := 0; i+1 < len(keys); i++ {
		if keys[i] >= keys[i+1] {
			fmt.Fprintln(r.out, color.RedString("keys must be strictly ascending"))
			return
		}
	}
	tree, err := btree.BuildFromSorted(keys, r.tree.Order())
	if err != nil {
		fmt.Fprintln(r.out, color.RedString("bulk load failed: %v", err))
		return
	}
	r.tree = tree
	fmt.Fprintln(r.out, color.GreenString("loaded %d keys, height %d", tree.Len(), tree.Height()))
}

func (r *repl) extreme(get func() (int, error)) {
	key, err := get()
	if err != nil {
		fmt.Fprintln(r.out, color.YellowString("tree is empty"))
		return
	}
	fmt.Fprintln(r.out, key)
}

func (r *repl) help() {
	fmt.Fprint(r.out, `Commands:
  insert <key>...   add keys                 min / max      smallest / largest key
  remove <key>...   delete keys              len            number of keys
  search <key>      point lookup             height         edges from root to leaf
  range <a> <b>     keys in [a, b]           check          verify structural invariants
  bulk <key>...     rebuild from sorted keys clear          drop all keys
  keys              list keys in order       quit           end the session
`)
}

func parseKeys(args []string, minArgs int) ([]int, error) {
	if len(args) < minArgs {
		return nil, fmt.Errorf("expected at least %d arguments", minArgs)
	}
	keys := make([]int, len(args))
	for i, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("bad key %q: %w", arg, err)
		}
		keys[i] = key
	}
	return keys, nil
}
