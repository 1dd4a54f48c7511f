package fontheight

import (
	"context"

	"github.com/typetools/fontheight/internal/parallel"
	"github.com/typetools/fontheight/wordlists"
)

// DefaultResults is the number of exemplar words reported per extreme
// when Options.Results is unset.
const DefaultResults = 5

// Report holds the measured exemplars for one word list at one
// design-space location.
type Report struct {
	Location  *Location
	WordList  *wordlists.WordList
	Exemplars Exemplars
}

// Extremes merges the report's exemplars into a single vertical span.
func (r *Report) Extremes() VerticalExtremes {
	var ext VerticalExtremes
	for _, we := range r.Exemplars.Lowest {
		ext = ext.Merge(we.Extremes)
	}
	for _, we := range r.Exemplars.Highest {
		ext = ext.Merge(we.Extremes)
	}
	return ext
}

// SummarizeFont merges every report's extremes into a font-level
// worst-case span, without re-shaping anything.
func SummarizeFont(reports []*Report) VerticalExtremes {
	var ext VerticalExtremes
	for _, rep := range reports {
		ext = ext.Merge(rep.Extremes())
	}
	return ext
}

// Options configures a Run.
type Options struct {
	// Results is the number of exemplar words kept per extreme.
	// Defaults to DefaultResults.
	Results int

	// MaxWords caps how many words of each list are tested. 0 tests
	// every word.
	MaxWords int

	// Locations are explicit design-space locations to test in
	// addition to the defaults.
	Locations []*Location

	// AllLocations tests the full interesting-locations product
	// instead of just the default location and named instances.
	AllLocations bool

	// Languages restricts word-list selection to lists matching one of
	// these BCP-47 tags. Empty means no restriction.
	Languages []string

	// Lists overrides the word-list catalog. Nil means the embedded
	// catalog.
	Lists []*wordlists.WordList

	// Workers is the worker pool size. 0 means GOMAXPROCS.
	Workers int
}

// Run measures the font across locations and word lists and returns
// the non-empty reports, grouped by word list in selection order and
// then by location order.
//
// Locations that fail validation and lists that fail plan construction
// are logged and skipped; they never abort the run. Cancellation is
// coarse: ctx is checked between measurement units.
func (r *Reporter) Run(ctx context.Context, opts Options) ([]*Report, error) {
	if opts.Results <= 0 {
		opts.Results = DefaultResults
	}

	catalog := opts.Lists
	if catalog == nil {
		catalog = wordlists.Catalog()
	}
	lists := r.SelectWordLists(catalog, opts.Languages)

	instances := r.instances(opts)
	if len(instances) >= 100 && opts.MaxWords == 0 {
		Logger().Warn("testing many locations with every word may take a while; consider capping words per list",
			"locations", len(instances))
	}

	pool := parallel.NewWorkerPool(opts.Workers)
	defer pool.Close()

	// One slot per (list, instance) unit keeps assembly lock-free and
	// the output grouped by list, then by location.
	slots := make([]*Report, len(lists)*len(instances))
	tasks := make([]func(), 0, len(slots))
	for li, list := range lists {
		for ii, inst := range instances {
			list, inst, slot := list, inst, li*len(instances)+ii
			tasks = append(tasks, func() {
				if ctx.Err() != nil {
					return
				}
				rep, err := inst.Check(list, opts.MaxWords, opts.Results)
				if err != nil {
					Logger().Warn("skipping word list",
						"list", list.Name(), "location", inst.Location().String(), "err", err)
					return
				}
				Logger().Info("finished checking list",
					"list", list.Name(), "location", inst.Location().String())
				if rep.Exemplars.IsEmpty() {
					return
				}
				slots[slot] = rep
			})
		}
	}
	pool.ExecuteAll(tasks)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(slots))
	for _, rep := range slots {
		if rep != nil {
			reports = append(reports, rep)
		}
	}
	return reports, nil
}

// instances materializes and validates the run's locations: the default
// location first, then named instances in declaration order (or the
// interesting-locations product with AllLocations), then explicit user
// locations in request order. Duplicates keep their first occurrence;
// locations that fail validation are logged and dropped.
func (r *Reporter) instances(opts Options) []*Instance {
	var locs []*Location
	if opts.AllLocations {
		locs = r.InterestingLocations()
	} else {
		locs = append(locs, r.DefaultLocation())
		locs = append(locs, r.named...)
	}
	locs = append(locs, opts.Locations...)

	seen := make(map[string]struct{}, len(locs))
	instances := make([]*Instance, 0, len(locs))
	for _, loc := range locs {
		key := loc.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		inst, err := r.Instance(loc)
		if err != nil {
			Logger().Warn("skipping location", "location", loc.String(), "err", err)
			continue
		}
		instances = append(instances, inst)
	}
	return instances
}
