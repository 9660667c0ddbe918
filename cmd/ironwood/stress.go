package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/ironwood-db/ironwood/internal/btree"
)

// stressAction runs a deterministic random insert/remove workload against
// one tree, validating the structural invariants and the size cache after
// every mutation, and cross-checking membership against a reference set at
// the end. A violation aborts with a nonzero exit code and the offending
// operation number.
func stressAction(c *cli.Context) error {
	order := orderOf(c)
	ops := c.Int("ops")
	seed := c.Int64("seed")
	keyspace := c.Int("keyspace")

	tree, err := btree.New[int](order)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	ref := make(map[int]bool, keyspace)
	inserts, removes := 0, 0

	for i := 0; i < ops; i++ {
		key := rng.Intn(keyspace)
		if rng.Intn(3) == 0 {
			if tree.Remove(key) != ref[key] {
				return stressFailure(i, fmt.Sprintf("remove(%d) disagrees with reference", key))
			}
			delete(ref, key)
			removes++
		} else {
			if tree.Insert(key) != !ref[key] {
				return stressFailure(i, fmt.Sprintf("insert(%d) disagrees with reference", key))
			}
			ref[key] = true
			inserts++
		}

		if err := tree.Check(); err != nil {
			return stressFailure(i, err.Error())
		}
		if tree.Len() != len(ref) {
			return stressFailure(i, fmt.Sprintf("size %d, reference %d", tree.Len(), len(ref)))
		}
	}

	for key := 0; key < keyspace; key++ {
		if tree.Search(key) != ref[key] {
			return stressFailure(ops, fmt.Sprintf("search(%d) disagrees with reference", key))
		}
	}

	fmt.Fprintln(os.Stdout, color.GreenString(
		"ok: order=%d ops=%d (inserts=%d removes=%d) final: len=%d height=%d",
		order, ops, inserts, removes, tree.Len(), tree.Height()))
	return nil
}

func stressFailure(op int, msg string) error {
	return cli.NewExitError(color.RedString("invariant failure at op %d: %s", op, msg), 1)
}
