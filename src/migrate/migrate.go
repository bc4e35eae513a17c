package migrate

import (
	"fmt"
	"io"

	"pdmove/src/prismapi"
)

// Options configures one move run.
type Options struct {
	Domain        string
	CategoryKey   string
	CategoryValue string

	// KeepGoing attempts every entity and collects per-entity outcomes
	// instead of halting on the first failure.
	KeepGoing bool
}

// Result records the outcome of one entity's detach/attach sequence.
type Result struct {
	Entity   prismapi.EntityRef
	Detached bool
	Attached bool
	Err      error
}

// Apply moves the given VMs out of the protection domain and into the
// category. Entities are processed strictly in order, one at a time: the
// attach only runs after a successful detach, and a detached entity stays
// detached even if its attach then fails — the cluster is the only record
// of where each VM ended up. By default the first failure stops the run
// and later entities are left untouched.
func Apply(client prismapi.Client, entities []prismapi.EntityRef, opts Options, out io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(entities))
	failed := 0
	for _, e := range entities {
		res := Result{Entity: e}

		fmt.Fprintf(out, "Removing %s from PD %s ...\n", e.Name, opts.Domain)
		if err := client.DetachEntityFromDomain(opts.Domain, e); err != nil {
			res.Err = err
			results = append(results, res)
			if !opts.KeepGoing {
				return results, err
			}
			failed++
			continue
		}
		res.Detached = true

		fmt.Fprintf(out, "Adding %s to category %s:%s ...\n", e.Name, opts.CategoryKey, opts.CategoryValue)
		if err := client.AttachEntityToCategory(e, opts.CategoryKey, opts.CategoryValue); err != nil {
			res.Err = err
			results = append(results, res)
			if !opts.KeepGoing {
				return results, err
			}
			failed++
			continue
		}
		res.Attached = true
		results = append(results, res)
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d entities failed", failed, len(entities))
	}
	return results, nil
}
